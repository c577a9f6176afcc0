package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	BarberID      string  `json:"barberId"`
	ServiceType   *string `json:"serviceType,omitempty"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Time          string  `json:"time"` // HH:MM
	Locale        string  `json:"locale,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	BarberID      string  `json:"barberId"`
	BarberName    string  `json:"barberName"`
	ServiceType   *string `json:"serviceType,omitempty"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Проверка бизнес-правил остаётся за use case, здесь только разбор форматов.
func (r *CreateAppointmentRequest) ToUseCaseRequest(acceptLanguage string) (*createAppointment.Request, error) {
	barberID, err := uuid.Parse(r.BarberID)
	if err != nil {
		return nil, fmt.Errorf("barberId: %w", err)
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	var serviceType *domain.ServiceType
	if r.ServiceType != nil && *r.ServiceType != "" {
		st := domain.ServiceType(*r.ServiceType)
		serviceType = &st
	}

	locale := r.Locale
	if locale == "" {
		locale = acceptLanguage
	}

	return &createAppointment.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		BarberID:      barberID,
		ServiceType:   serviceType,
		Date:          date,
		Time:          types.TimeString(r.Time),
		Locale:        locale,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	var serviceType *string
	if resp.ServiceType != nil {
		s := string(*resp.ServiceType)
		serviceType = &s
	}

	return &AppointmentResponse{
		ID:            resp.ID.String(),
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		BarberID:      resp.BarberID.String(),
		BarberName:    resp.BarberName,
		ServiceType:   serviceType,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		Status:        string(resp.Status),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
