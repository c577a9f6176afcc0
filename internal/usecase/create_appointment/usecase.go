package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/notify"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarbershopService/pkg/slots"
)

// Причины отказа для метрик
const (
	rejectInvalid     = "invalid"
	rejectOutOfRange  = "out_of_range"
	rejectBarber      = "barber"
	rejectUnavailable = "unavailable"
	rejectTaken       = "taken"
	rejectConflict    = "conflict"

	notificationChannelEmail = "email"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo  AppointmentRepository
	barberRepo       BarberRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	mailer           Mailer
	publisher        Publisher
	metrics          Metrics
	window           domain.BookingWindow
	stepMinutes      int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	mailer Mailer,
	publisher Publisher,
	metrics Metrics,
	window domain.BookingWindow,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		barberRepo:       barberRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		mailer:           mailer,
		publisher:        publisher,
		metrics:          metrics,
		window:           window,
		stepMinutes:      stepMinutes,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Проверка слота и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация входных данных
	if req != nil {
		normalizeRequest(req)
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.metrics.IncAppointmentRejected(rejectInvalid)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("CreateAppointment: barber=%s, date=%s, time=%s",
		req.BarberID, date.Format(domain.DateFormat), req.Time)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем окно бронирования
	if !uc.window.Contains(date, now) {
		uc.logger.Warn("CreateAppointment: date %s is outside booking window", date.Format(domain.DateFormat))
		uc.metrics.IncAppointmentRejected(rejectOutOfRange)
		return nil, fmt.Errorf("%w: %s", ErrDateOutOfRange, date.Format(domain.DateFormat))
	}

	var (
		created *domain.Appointment
		barber  *domain.Barber
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем барбера
		var err error
		barber, err = uc.barberRepo.GetByID(txCtx, req.BarberID)
		if err != nil {
			if errors.Is(err, barberRepo.ErrBarberNotFound) {
				uc.logger.Warn("CreateAppointment: barber id=%s not found", req.BarberID)
				return ErrBarberNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get barber id=%s: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
		}
		if !barber.IsActive {
			uc.logger.Warn("CreateAppointment: barber id=%s is inactive", req.BarberID)
			return ErrBarberInactive
		}

		// 4.2. Получаем окно доступности
		availability, err := uc.availabilityRepo.GetByBarberAndDate(txCtx, req.BarberID, date)
		if err != nil && !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Error("CreateAppointment: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		window := availability.Window()
		if window == nil {
			uc.logger.Warn("CreateAppointment: barber id=%s is not working on %s", req.BarberID, date.Format(domain.DateFormat))
			return ErrBarberUnavailable
		}

		// 4.3. Проверяем, что время попадает на сетку рабочего окна
		grid, err := slots.GenerateSlots(window.Start, window.End, uc.stepMinutes)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to generate slots for window %s-%s: %v", window.Start, window.End, err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		if !slots.NewBookedSet(grid...).Contains(req.Time) {
			uc.logger.Warn("CreateAppointment: time %s is not a slot of window %s-%s", req.Time, window.Start, window.End)
			return ErrInvalidTimeSlot
		}

		// 4.4. Получаем занятые слоты с блокировкой (FOR UPDATE)
		booked, err := uc.appointmentRepo.GetBookedTimes(txCtx, req.BarberID, date, domain.StatusConfirmed)
		if appointmentRepo.IsConflict(err) {
			return err
		}
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booked times: %v", err)
			return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
		}

		// 4.5. Слот должен остаться среди свободных
		free := slots.FilterAvailable(grid, slots.NewBookedSet(booked...))
		if !slots.NewBookedSet(free...).Contains(req.Time) {
			uc.logger.Warn("CreateAppointment: slot %s on %s is already taken", req.Time, date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 4.6. Сохраняем запись
		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			BarberID:      req.BarberID,
			ServiceType:   req.ServiceType,
			Date:          date,
			Time:          req.Time,
			Status:        domain.StatusConfirmed,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotAlreadyBooked) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, uc.rejected(err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)
	uc.metrics.IncAppointmentCreated(serviceLabel(created.ServiceType))

	// 5. Уведомляем администраторов и клиента. Ошибки не отменяют запись.
	uc.publish(ctx, created, barber)
	uc.sendConfirmation(ctx, created, barber, req.Locale)

	return &Response{
		ID:            created.ID,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		CustomerPhone: created.CustomerPhone,
		BarberID:      created.BarberID,
		BarberName:    barber.Name,
		ServiceType:   created.ServiceType,
		Date:          created.Date,
		Time:          created.Time,
		Status:        created.Status,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// rejected приводит ошибку транзакции к ошибке use case и учитывает её в метриках
func (uc *UseCase) rejected(err error) error {
	switch {
	case errors.Is(err, ErrBarberNotFound), errors.Is(err, ErrBarberInactive):
		uc.metrics.IncAppointmentRejected(rejectBarber)
		return err
	case errors.Is(err, ErrBarberUnavailable), errors.Is(err, ErrInvalidTimeSlot):
		uc.metrics.IncAppointmentRejected(rejectUnavailable)
		return err
	case errors.Is(err, ErrSlotNotAvailable):
		uc.metrics.IncAppointmentRejected(rejectTaken)
		return err
	case appointmentRepo.IsConflict(err):
		// Конкурентная транзакция заняла слот раньше (ошибка сериализации при фиксации)
		uc.logger.Warn("CreateAppointment: concurrent booking conflict: %v", err)
		uc.metrics.IncAppointmentRejected(rejectConflict)
		return fmt.Errorf("%w: concurrent booking", ErrSlotNotAvailable)
	case errors.Is(err, ErrInternal):
		return err
	default:
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}
}

func (uc *UseCase) publish(ctx context.Context, a *domain.Appointment, barber *domain.Barber) {
	event := createdEvent{
		ID:           a.ID,
		BarberID:     a.BarberID,
		BarberName:   barber.Name,
		CustomerName: a.CustomerName,
		Date:         a.Date.Format(domain.DateFormat),
		Time:         a.Time.String(),
	}
	if a.ServiceType != nil {
		s := string(*a.ServiceType)
		event.ServiceType = &s
	}
	uc.publisher.Publish(ctx, notify.EventAppointmentCreated, event)
}

func (uc *UseCase) sendConfirmation(ctx context.Context, a *domain.Appointment, barber *domain.Barber, localeTag string) {
	err := uc.mailer.SendConfirmation(ctx, mailer.Confirmation{
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		BarberName:    barber.Name,
		Date:          a.Date,
		Time:          a.Time,
		ServiceType:   a.ServiceType,
		Locale:        localeTag,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to send confirmation for id=%s: %v", a.ID, err)
		uc.metrics.IncNotification(notificationChannelEmail, "failed")
		return
	}
	uc.metrics.IncNotification(notificationChannelEmail, "sent")
}

func serviceLabel(s *domain.ServiceType) string {
	if s == nil {
		return "unspecified"
	}
	return string(*s)
}
