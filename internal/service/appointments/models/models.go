package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidFilter возвращается при некорректном параметре фильтра
	ErrInvalidFilter = errors.New("invalid appointments filter")
)

// Request модели

// ListRequest запрос списка записей. Все поля опциональны.
type ListRequest struct {
	Date     *string `json:"date,omitempty"`     // "2025-03-10"
	FromDate *string `json:"fromDate,omitempty"` // "2025-03-10"
	BarberID *string `json:"barberId,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	var filter domain.AppointmentsFilter

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, fmt.Errorf("%w: date %q", ErrInvalidFilter, *r.Date)
		}
		filter.Date = &date
	}

	if r.FromDate != nil {
		from, err := time.Parse(domain.DateFormat, *r.FromDate)
		if err != nil {
			return filter, fmt.Errorf("%w: fromDate %q", ErrInvalidFilter, *r.FromDate)
		}
		filter.FromDate = &from
	}

	if r.BarberID != nil {
		id, err := uuid.Parse(*r.BarberID)
		if err != nil {
			return filter, fmt.Errorf("%w: barberId %q", ErrInvalidFilter, *r.BarberID)
		}
		filter.BarberID = &id
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	BarberID      string    `json:"barberId"`
	BarberName    string    `json:"barberName,omitempty"`
	ServiceType   *string   `json:"serviceType,omitempty"`
	Date          string    `json:"date"` // "2025-03-10"
	Time          string    `json:"time"` // "10:30"
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// StatsResponse сводка для главной страницы админки
type StatsResponse struct {
	Total    int `json:"total"`    // Все записи
	Today    int `json:"today"`    // Записи на сегодня
	Upcoming int `json:"upcoming"` // Записи на даты после сегодняшней
}

// StatusChangedEvent событие о смене статуса записи
type StatusChangedEvent struct {
	ID        string `json:"id"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, barberName string) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:            a.ID.String(),
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		BarberID:      a.BarberID.String(),
		BarberName:    barberName,
		Date:          a.Date.Format(domain.DateFormat),
		Time:          a.Time.String(),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if a.ServiceType != nil {
		s := string(*a.ServiceType)
		resp.ServiceType = &s
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO.
// barberNames сопоставляет ID барбера с именем, отсутствующие имена остаются пустыми.
func FromDomainAppointmentList(appointments []*domain.Appointment, barberNames map[uuid.UUID]string) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a, barberNames[a.BarberID]); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s, ok := domain.ParseAppointmentStatus(status)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}
