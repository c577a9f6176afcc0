package list_booking_dates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listBookingDates "github.com/m04kA/SMC-BarbershopService/internal/usecase/list_booking_dates"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct{ got *listBookingDates.Request }

func (s *stubUseCase) Execute(_ context.Context, req *listBookingDates.Request) (*listBookingDates.Response, error) {
	s.got = req
	return &listBookingDates.Response{
		Locale:    "ar",
		Direction: "rtl",
		Dates: []listBookingDates.BookingDate{
			{Date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), Weekday: "Tue", Day: "11", Label: "Tuesday"},
		},
	}, nil
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{}
	req := httptest.NewRequest(http.MethodGet, "/booking-dates?locale=ar", nil)
	req.Header.Set("Accept-Language", "da")
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"locale": "ar",
		"direction": "rtl",
		"dates": [{"date": "2025-03-11", "weekday": "Tue", "day": "11", "label": "Tuesday"}]
	}`, rec.Body.String())
	assert.Equal(t, "ar", uc.got.Locale)
	assert.Equal(t, "da", uc.got.AcceptLanguage)
}
