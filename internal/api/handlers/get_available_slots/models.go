package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BarberID string   `json:"barberId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"` // ["09:00", "09:30", ...]
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(barberID uuid.UUID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BarberID: barberID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		BarberID: resp.BarberID.String(),
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
