package list_booking_dates

import (
	"context"

	listBookingDates "github.com/m04kA/SMC-BarbershopService/internal/usecase/list_booking_dates"
)

type ListBookingDatesUseCase interface {
	Execute(ctx context.Context, req *listBookingDates.Request) (*listBookingDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
