package list_barbers

import "github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"

// PublicBarberResponse барбер в публичном ответе
type PublicBarberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PublicBarberListResponse публичный список барберов
type PublicBarberListResponse struct {
	Barbers []PublicBarberResponse `json:"barbers"`
}

// ToPublicResponse скрывает служебные поля
func ToPublicResponse(resp *models.BarberListResponse) *PublicBarberListResponse {
	result := &PublicBarberListResponse{
		Barbers: make([]PublicBarberResponse, 0, len(resp.Barbers)),
	}
	for _, b := range resp.Barbers {
		result.Barbers = append(result.Barbers, PublicBarberResponse{ID: b.ID, Name: b.Name})
	}
	return result
}
