package models

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// Request модели

// CreateRequest запрос на добавление барбера
type CreateRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	IsActive *bool  `json:"isActive,omitempty"` // По умолчанию true
}

// UpdateRequest запрос на изменение барбера
type UpdateRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// Response модели

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// Методы конвертации

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	if b == nil {
		return nil
	}
	return &BarberResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	resp := &BarberListResponse{
		Barbers: make([]BarberResponse, 0, len(barbers)),
	}
	for _, b := range barbers {
		if item := FromDomainBarber(b); item != nil {
			resp.Barbers = append(resp.Barbers, *item)
		}
	}
	return resp
}
