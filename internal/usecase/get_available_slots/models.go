package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	BarberID uuid.UUID // ID барбера
	Date     time.Time // Дата (без времени)
}

// Response модель ответа со свободными слотами
type Response struct {
	BarberID uuid.UUID          // ID барбера
	Date     time.Time          // Дата, на которую запрашивались слоты
	Slots    []types.TimeString // Свободные слоты по возрастанию, пустой список если записи нет
}
