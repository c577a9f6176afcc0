package create_barber

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

type BarberService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
