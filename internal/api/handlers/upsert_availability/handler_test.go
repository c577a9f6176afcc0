package upsert_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/service/availability"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	got *models.UpsertRequest
	err error
}

func (s *stubService) Upsert(_ context.Context, barberID uuid.UUID, req *models.UpsertRequest) (*models.AvailabilityResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AvailabilityResponse{
		ID:          uuid.New().String(),
		BarberID:    barberID.String(),
		Date:        req.Date,
		StartTime:   "09:00",
		EndTime:     "18:00",
		IsAvailable: *req.IsAvailable,
	}, nil
}

func put(svc *stubService, id, payload string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/admin/barbers/{barberId}/availability", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/admin/barbers/"+id+"/availability", strings.NewReader(payload)))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &stubService{}

	rec := put(svc, uuid.New().String(), `{"date":"2025-03-11","isAvailable":true,"endTime":"17:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isAvailable":true`)
	require.NotNil(t, svc.got.EndTime)
	assert.Equal(t, "17:00", *svc.got.EndTime)
	assert.Nil(t, svc.got.StartTime)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New().String()
	payload := `{"date":"2025-03-11","isAvailable":true}`

	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{name: "некорректный ID", id: "x", want: http.StatusBadRequest},
		{name: "ошибка валидации", id: id, err: availability.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "начало позже конца", id: id, err: availability.ErrInvalidTimeRange, want: http.StatusBadRequest},
		{name: "барбер не найден", id: id, err: availability.ErrBarberNotFound, want: http.StatusNotFound},
		{name: "внутренняя ошибка", id: id, err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&stubService{err: tt.err}, tt.id, payload)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
