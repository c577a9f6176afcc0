package get_appointment_stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	stats *models.StatsResponse
	err   error
}

func (s *stubService) Stats(_ context.Context) (*models.StatsResponse, error) {
	return s.stats, s.err
}

func TestHandle(t *testing.T) {
	svc := &stubService{stats: &models.StatsResponse{Total: 12, Today: 3, Upcoming: 7}}

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/appointments/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.StatsResponse{Total: 12, Today: 3, Upcoming: 7}, got)
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("db down")}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/appointments/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
