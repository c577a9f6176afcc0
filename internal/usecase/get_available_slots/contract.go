package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByBarberAndDate(ctx context.Context, barberID uuid.UUID, date time.Time) (*domain.BarberAvailability, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetBookedTimes(ctx context.Context, barberID uuid.UUID, date time.Time, status domain.AppointmentStatus) ([]types.TimeString, error)
}

// Metrics бизнес-метрики запросов слотов
type Metrics interface {
	ObserveSlotQuery(result string, available int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
