package models

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// Request модели

// UpsertRequest запрос на отметку доступности барбера на дату.
// IsAvailable задаётся всегда, время начала и конца опционально:
// отсутствующее значение берётся из сохранённой записи.
type UpsertRequest struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	IsAvailable *bool   `json:"isAvailable" validate:"required"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
}

// Response модели

// AvailabilityResponse ответ с окном доступности
type AvailabilityResponse struct {
	ID          string    `json:"id"`
	BarberID    string    `json:"barberId"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AvailabilityListResponse ответ со списком окон на дату
type AvailabilityListResponse struct {
	Availability []AvailabilityResponse `json:"availability"`
}

// Методы конвертации

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.BarberAvailability) *AvailabilityResponse {
	if a == nil {
		return nil
	}
	return &AvailabilityResponse{
		ID:          a.ID.String(),
		BarberID:    a.BarberID.String(),
		Date:        a.Date.Format(domain.DateFormat),
		StartTime:   a.StartTime.String(),
		EndTime:     a.EndTime.String(),
		IsAvailable: a.IsAvailable,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAvailabilityList конвертирует список domain моделей в DTO
func FromDomainAvailabilityList(list []*domain.BarberAvailability) *AvailabilityListResponse {
	resp := &AvailabilityListResponse{
		Availability: make([]AvailabilityResponse, 0, len(list)),
	}
	for _, a := range list {
		if item := FromDomainAvailability(a); item != nil {
			resp.Availability = append(resp.Availability, *item)
		}
	}
	return resp
}
