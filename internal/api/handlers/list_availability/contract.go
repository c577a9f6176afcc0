package list_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListByDate(ctx context.Context, date time.Time) (*models.AvailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
