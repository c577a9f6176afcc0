package barbers

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Barber, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
	Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Cache кэш списка активных барберов (опционален, nil отключает кэш)
type Cache interface {
	GetActive(ctx context.Context) ([]*domain.Barber, error)
	SetActive(ctx context.Context, barbers []*domain.Barber) error
	Invalidate(ctx context.Context) error
}

// Metrics метрики обращений к кэшу
type Metrics interface {
	IncCacheRequest(cache, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
