package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/pkg/slots"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Barber мастер барбершопа
type Barber struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BarberAvailability окно работы барбера на конкретную дату.
// На пару (барбер, дата) хранится не более одной записи.
type BarberAvailability struct {
	ID          uuid.UUID
	BarberID    uuid.UUID
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Window возвращает окно для расчёта слотов.
// nil означает, что в этот день барбер не принимает.
func (a *BarberAvailability) Window() *slots.TimeWindow {
	if a == nil || !a.IsAvailable || a.StartTime.IsZero() || a.EndTime.IsZero() {
		return nil
	}
	return &slots.TimeWindow{Start: a.StartTime, End: a.EndTime}
}

// AdminUser администратор, управляющий записями и расписанием
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
