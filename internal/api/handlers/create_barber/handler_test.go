package create_barber

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	got *models.CreateRequest
	err error
}

func (s *stubService) Create(_ context.Context, req *models.CreateRequest) (*models.BarberResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BarberResponse{ID: "b1", Name: req.Name, IsActive: true}, nil
}

func post(svc *stubService, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/admin/barbers", strings.NewReader(payload)))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}

	rec := post(svc, `{"name":"Lars"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Lars"`)
	assert.Nil(t, svc.got.IsActive)

	assert.Equal(t, http.StatusBadRequest, post(&stubService{}, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(&stubService{err: barbers.ErrInvalidInput}, `{"name":""}`).Code)
	assert.Equal(t, http.StatusInternalServerError, post(&stubService{err: errors.New("boom")}, `{"name":"Lars"}`).Code)
}
