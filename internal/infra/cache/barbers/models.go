package barbers

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

func (b cachedBarber) toDomain() (*domain.Barber, error) {
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Barber{
		ID:        id,
		Name:      b.Name,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}, nil
}
