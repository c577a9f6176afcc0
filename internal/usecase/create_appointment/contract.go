package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetBookedTimes(ctx context.Context, barberID uuid.UUID, date time.Time, status domain.AppointmentStatus) ([]types.TimeString, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByBarberAndDate(ctx context.Context, barberID uuid.UUID, date time.Time) (*domain.BarberAvailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer отправка письма-подтверждения клиенту
type Mailer interface {
	SendConfirmation(ctx context.Context, msg mailer.Confirmation) error
}

// Publisher рассылка событий в панель администратора
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{})
}

// Metrics бизнес-метрики записей
type Metrics interface {
	IncAppointmentCreated(serviceType string)
	IncAppointmentRejected(reason string)
	IncNotification(channel, status string)
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
