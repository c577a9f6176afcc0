package list_appointments

import (
	"net/url"

	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

// ToServiceRequest собирает фильтр из query параметров. Пустые значения не фильтруют.
func ToServiceRequest(query url.Values) *models.ListRequest {
	return &models.ListRequest{
		Date:     optional(query.Get("date")),
		FromDate: optional(query.Get("fromDate")),
		BarberID: optional(query.Get("barberId")),
		Status:   optional(query.Get("status")),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
