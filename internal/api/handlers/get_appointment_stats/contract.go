package get_appointment_stats

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

type AppointmentService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
