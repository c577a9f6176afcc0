package list_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct{ got time.Time }

func (s *stubService) ListByDate(_ context.Context, date time.Time) (*models.AvailabilityListResponse, error) {
	s.got = date
	return &models.AvailabilityListResponse{Availability: []models.AvailabilityResponse{}}, nil
}

func get(svc *stubService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}

	rec := get(svc, "/admin/availability?date=2025-03-11")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"availability":[]}`, rec.Body.String())
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), svc.got)

	assert.Equal(t, http.StatusBadRequest, get(&stubService{}, "/admin/availability").Code)
	assert.Equal(t, http.StatusBadRequest, get(&stubService{}, "/admin/availability?date=11.03.2025").Code)
}
