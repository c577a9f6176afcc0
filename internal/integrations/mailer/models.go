package mailer

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Confirmation данные письма-подтверждения записи
type Confirmation struct {
	CustomerName  string
	CustomerEmail string
	BarberName    string
	Date          time.Time
	Time          types.TimeString
	ServiceType   *domain.ServiceType
	Locale        string // тег локали или значение Accept-Language
}
