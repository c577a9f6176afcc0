package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

var validate = validator.New()

// Service сервис управления рабочими окнами барберов
type Service struct {
	availabilityRepo AvailabilityRepository
	barberRepo       BarberRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		barberRepo:       barberRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// ListByDate возвращает окна всех барберов на дату
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.AvailabilityListResponse, error) {
	list, err := s.availabilityRepo.ListByDate(ctx, domain.DateOnly(date))
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAvailabilityList(list), nil
}

// Upsert создает или частично обновляет окно барбера на дату.
// Незаданные StartTime/EndTime берутся из сохранённой записи, а при её отсутствии
// из рабочих часов по умолчанию. После слияния начало должно быть раньше конца.
func (s *Service) Upsert(ctx context.Context, barberID uuid.UUID, req *models.UpsertRequest) (*models.AvailabilityResponse, error) {
	// 1. Валидация запроса
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	start, err := parseOptionalTime(req.StartTime)
	if err != nil {
		s.logger.Warn("Upsert: invalid startTime: %v", err)
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := parseOptionalTime(req.EndTime)
	if err != nil {
		s.logger.Warn("Upsert: invalid endTime: %v", err)
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	var saved *domain.BarberAvailability

	// 2. Читаем текущее окно и сохраняем результат слияния в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.barberRepo.GetByID(txCtx, barberID); err != nil {
			if errors.Is(err, barberRepo.ErrBarberNotFound) {
				s.logger.Warn("Upsert: barber id=%s not found", barberID)
				return ErrBarberNotFound
			}
			s.logger.Error("Upsert: failed to get barber id=%s: %v", barberID, err)
			return fmt.Errorf("%w: Upsert - get barber: %v", ErrInternal, err)
		}

		current, err := s.availabilityRepo.GetByBarberAndDate(txCtx, barberID, date)
		if err != nil && !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Error("Upsert: failed to get availability: %v", err)
			return fmt.Errorf("%w: Upsert - get availability: %v", ErrInternal, err)
		}

		merged := merge(current, barberID, date, *req.IsAvailable, start, end)
		if !merged.StartTime.IsBefore(merged.EndTime) {
			s.logger.Warn("Upsert: invalid range %s-%s for barber id=%s", merged.StartTime, merged.EndTime, barberID)
			return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, merged.StartTime, merged.EndTime)
		}

		saved, err = s.availabilityRepo.Upsert(txCtx, merged)
		if err != nil {
			s.logger.Error("Upsert: repository error: %v", err)
			return fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBarberNotFound) || errors.Is(err, ErrInvalidTimeRange) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("Upsert: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: Upsert - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: barber id=%s date=%s available=%t %s-%s",
		barberID, req.Date, saved.IsAvailable, saved.StartTime, saved.EndTime)
	return models.FromDomainAvailability(saved), nil
}

// merge накладывает изменения на сохранённое окно
func merge(
	current *domain.BarberAvailability,
	barberID uuid.UUID,
	date time.Time,
	isAvailable bool,
	start, end types.TimeString,
) *domain.BarberAvailability {
	merged := &domain.BarberAvailability{
		BarberID:    barberID,
		Date:        date,
		StartTime:   domain.DefaultWorkdayStart,
		EndTime:     domain.DefaultWorkdayEnd,
		IsAvailable: isAvailable,
	}

	if current != nil {
		merged.ID = current.ID
		if !current.StartTime.IsZero() {
			merged.StartTime = current.StartTime
		}
		if !current.EndTime.IsZero() {
			merged.EndTime = current.EndTime
		}
	}

	if !start.IsZero() {
		merged.StartTime = start
	}
	if !end.IsZero() {
		merged.EndTime = end
	}

	return merged
}

func parseOptionalTime(value *string) (types.TimeString, error) {
	if value == nil || *value == "" {
		return "", nil
	}
	return types.NewTimeStringFromString(*value)
}
