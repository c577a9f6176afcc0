package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/notify"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

// Service сервис администрирования записей
type Service struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	txManager       TransactionManager
	publisher       Publisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	publisher Publisher,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		txManager:       txManager,
		publisher:       publisher,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List возвращает записи по фильтру, упорядоченные по дате и времени
//
// Примеры использования:
// - Все записи: List(ctx, &ListRequest{})
// - Записи на дату: указать Date
// - Будущие подтверждённые: FromDate = сегодня, Status = "confirmed"
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	names, err := s.barberNames(ctx)
	if err != nil {
		s.logger.Error("List: failed to load barber names: %v", err)
		return nil, fmt.Errorf("%w: List - barber names: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments, names), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	names, err := s.barberNames(ctx)
	if err != nil {
		s.logger.Error("GetByID: failed to load barber names: %v", err)
		return nil, fmt.Errorf("%w: GetByID - barber names: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment, names[appointment.BarberID]), nil
}

// UpdateStatus меняет статус записи.
// Допустимы только переходы confirmed -> cancelled и confirmed -> completed.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		updated   *domain.Appointment
		oldStatus domain.AppointmentStatus
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Внутри транзакции строка блокируется до фиксации
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		// Проверяем допустимость перехода
		if !appointment.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%s",
				appointment.Status, newStatus, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("UpdateStatus: appointment id=%s not found during update", id)
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		oldStatus = appointment.Status
		appointment.Status = newStatus
		updated = appointment
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) || errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("UpdateStatus: transaction failed for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - transaction: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, notify.EventAppointmentStatusChanged, models.StatusChangedEvent{
		ID:        updated.ID.String(),
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
		Date:      updated.Date.Format(domain.DateFormat),
		Time:      updated.Time.String(),
	})

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	return models.FromDomainAppointment(updated, ""), nil
}

// Stats возвращает сводку по записям относительно текущей даты
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())

	total, err := s.appointmentRepo.Count(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("Stats: failed to count total: %v", err)
		return nil, fmt.Errorf("%w: Stats - total: %v", ErrInternal, err)
	}

	todayCount, err := s.appointmentRepo.Count(ctx, domain.AppointmentsFilter{Date: &today})
	if err != nil {
		s.logger.Error("Stats: failed to count today: %v", err)
		return nil, fmt.Errorf("%w: Stats - today: %v", ErrInternal, err)
	}

	// Предстоящие: все записи на даты после сегодняшней, независимо от статуса
	tomorrow := today.AddDate(0, 0, 1)
	upcoming, err := s.appointmentRepo.Count(ctx, domain.AppointmentsFilter{FromDate: &tomorrow})
	if err != nil {
		s.logger.Error("Stats: failed to count upcoming: %v", err)
		return nil, fmt.Errorf("%w: Stats - upcoming: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		Total:    total,
		Today:    todayCount,
		Upcoming: upcoming,
	}, nil
}

// barberNames строит соответствие ID барбера и имени, включая неактивных
func (s *Service) barberNames(ctx context.Context) (map[uuid.UUID]string, error) {
	barbers, err := s.barberRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(barbers))
	for _, b := range barbers {
		names[b.ID] = b.Name
	}
	return names, nil
}
