package list_booking_dates

import (
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	listBookingDates "github.com/m04kA/SMC-BarbershopService/internal/usecase/list_booking_dates"
)

// BookingDateResponse дата в HTTP ответе
type BookingDateResponse struct {
	Date    string `json:"date"`    // "2025-03-10"
	Weekday string `json:"weekday"` // "Mon"
	Day     string `json:"day"`     // "10"
	Label   string `json:"label"`   // "Monday, March 10, 2025"
}

// BookingDatesResponse HTTP response model
type BookingDatesResponse struct {
	Locale    string                `json:"locale"`
	Direction string                `json:"direction"` // "ltr" | "rtl"
	Dates     []BookingDateResponse `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *listBookingDates.Response) *BookingDatesResponse {
	dates := make([]BookingDateResponse, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, BookingDateResponse{
			Date:    d.Date.Format(domain.DateFormat),
			Weekday: d.Weekday,
			Day:     d.Day,
			Label:   d.Label,
		})
	}

	return &BookingDatesResponse{
		Locale:    resp.Locale,
		Direction: resp.Direction,
		Dates:     dates,
	}
}
