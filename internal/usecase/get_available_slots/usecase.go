package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/pkg/slots"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Результаты запроса слотов для метрик
const (
	resultOK          = "ok"
	resultUnavailable = "unavailable"
	resultFullyBooked = "fully_booked"
)

// UseCase use case для получения свободных слотов барбера на дату
type UseCase struct {
	barberRepo       BarberRepository
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	window           domain.BookingWindow
	stepMinutes      int
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	window domain.BookingWindow,
	stepMinutes int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		barberRepo:       barberRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		window:           window,
		stepMinutes:      stepMinutes,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailableSlots: barber=%s, date=%s", req.BarberID, date.Format(domain.DateFormat))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата попадает в окно бронирования
	if !uc.window.Contains(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is outside booking window", date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrDateOutOfRange, date.Format(domain.DateFormat))
	}

	// 4. Проверяем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("GetAvailableSlots: barber id=%s is inactive", req.BarberID)
		return nil, ErrBarberInactive
	}

	// 5. Получаем окно доступности барбера на дату
	availability, err := uc.availabilityRepo.GetByBarberAndDate(ctx, req.BarberID, date)
	if err != nil && !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	window := availability.Window()
	if window == nil {
		uc.logger.Info("GetAvailableSlots: barber id=%s is not working on %s", req.BarberID, date.Format(domain.DateFormat))
		uc.metrics.ObserveSlotQuery(resultUnavailable, 0)
		return newResponse(req, date, nil), nil
	}

	// 6. Получаем уже занятые подтвержденные слоты
	booked, err := uc.appointmentRepo.GetBookedTimes(ctx, req.BarberID, date, domain.StatusConfirmed)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 7. Вычисляем свободные слоты
	free, err := slots.ComputeAvailabilityWithStep(window, slots.NewBookedSet(booked...), uc.stepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots for window %s-%s: %v", window.Start, window.End, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// 8. Метрики и лог
	result := resultOK
	if len(free) == 0 {
		result = resultFullyBooked
	}
	uc.metrics.ObserveSlotQuery(result, len(free))

	uc.logger.Info("GetAvailableSlots: %d free slots (%d booked) for barber=%s, date=%s",
		len(free), len(booked), req.BarberID, date.Format(domain.DateFormat))

	return newResponse(req, date, free), nil
}

func newResponse(req *Request, date time.Time, free []types.TimeString) *Response {
	if free == nil {
		free = []types.TimeString{}
	}
	return &Response{
		BarberID: req.BarberID,
		Date:     date,
		Slots:    free,
	}
}
