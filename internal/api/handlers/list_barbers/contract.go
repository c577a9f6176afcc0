package list_barbers

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

// BarberService источник списка барберов.
// Публичный маршрут получает ListActive, административный ListAll.
type BarberService interface {
	ListActive(ctx context.Context) (*models.BarberListResponse, error)
	ListAll(ctx context.Context) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
