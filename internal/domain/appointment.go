package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// AppointmentStatus статус записи клиента
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ParseAppointmentStatus проверяет и конвертирует строку в статус
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// ServiceType вид услуги
type ServiceType string

const (
	ServiceHaircut     ServiceType = "haircut"
	ServiceBeardTrim   ServiceType = "beard_trim"
	ServiceFullPackage ServiceType = "full_package"
)

// ParseServiceType проверяет и конвертирует строку в вид услуги
func ParseServiceType(s string) (ServiceType, bool) {
	switch ServiceType(s) {
	case ServiceHaircut, ServiceBeardTrim, ServiceFullPackage:
		return ServiceType(s), true
	default:
		return "", false
	}
}

// Appointment запись клиента к барберу на конкретный слот
type Appointment struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BarberID      uuid.UUID
	ServiceType   *ServiceType // nil, если клиент не выбрал услугу
	Date          time.Time    // только дата
	Time          types.TimeString
	Status        AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed возвращает true, если запись занимает слот
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость смены статуса.
// Из confirmed можно перейти в cancelled или completed, остальные статусы конечные.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status != StatusConfirmed {
		return false
	}
	return next == StatusCancelled || next == StatusCompleted
}

// AppointmentsFilter фильтр для списка записей в админке
type AppointmentsFilter struct {
	Date     *time.Time         // Точная дата
	FromDate *time.Time         // Начиная с даты (включительно)
	BarberID *uuid.UUID         // Конкретный барбер
	Status   *AppointmentStatus // Конкретный статус
}
