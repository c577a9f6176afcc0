package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string              `validate:"required,min=2,max=100"` // Имя клиента
	CustomerEmail string              `validate:"required,email,max=254"` // Email для подтверждения
	CustomerPhone string              `validate:"required,min=10,max=20"` // Телефон
	BarberID      uuid.UUID           // ID барбера
	ServiceType   *domain.ServiceType // Тип услуги (опционально)
	Date          time.Time           // Дата записи (без времени)
	Time          types.TimeString    // Время слота, например "10:30"
	Locale        string              // Предпочтительная локаль письма
}

// Response модель ответа с созданной записью
type Response struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BarberID      uuid.UUID
	BarberName    string
	ServiceType   *domain.ServiceType
	Date          time.Time
	Time          types.TimeString
	Status        domain.AppointmentStatus
	CreatedAt     time.Time
}

// createdEvent полезная нагрузка события о новой записи
type createdEvent struct {
	ID           uuid.UUID `json:"id"`
	BarberID     uuid.UUID `json:"barberId"`
	BarberName   string    `json:"barberName"`
	CustomerName string    `json:"customerName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	ServiceType  *string   `json:"serviceType,omitempty"`
}
