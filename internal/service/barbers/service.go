package barbers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barbersCache "github.com/m04kA/SMC-BarbershopService/internal/infra/cache/barbers"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

const cacheName = "active_barbers"

var validate = validator.New()

// Service сервис барберов
type Service struct {
	barberRepo BarberRepository
	cache      Cache
	metrics    Metrics
	logger     Logger
}

// NewService создает новый экземпляр сервиса барберов.
// cache может быть nil, тогда список всегда читается из БД.
func NewService(barberRepo BarberRepository, cache Cache, metrics Metrics, logger Logger) *Service {
	return &Service{
		barberRepo: barberRepo,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

// ListActive возвращает барберов, принимающих записи.
// Список берётся из кэша, при промахе или ошибке Redis читается из БД.
func (s *Service) ListActive(ctx context.Context) (*models.BarberListResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetActive(ctx)
		switch {
		case err == nil:
			s.metrics.IncCacheRequest(cacheName, "hit")
			return models.FromDomainBarberList(cached), nil
		case errors.Is(err, barbersCache.ErrCacheMiss):
			s.metrics.IncCacheRequest(cacheName, "miss")
		default:
			s.metrics.IncCacheRequest(cacheName, "error")
			s.logger.Warn("ListActive: cache read failed, falling back to database: %v", err)
		}
	}

	barbers, err := s.barberRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, barbers); err != nil {
			s.logger.Warn("ListActive: failed to populate cache: %v", err)
		}
	}

	return models.FromDomainBarberList(barbers), nil
}

// ListAll возвращает всех барберов, включая неактивных
func (s *Service) ListAll(ctx context.Context) (*models.BarberListResponse, error) {
	barbers, err := s.barberRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBarberList(barbers), nil
}

// Create добавляет барбера
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.BarberResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := s.barberRepo.Create(ctx, &domain.Barber{Name: req.Name, IsActive: active})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "Create")

	s.logger.Info("Create: barber id=%s (%s) created", created.ID, created.Name)
	return models.FromDomainBarber(created), nil
}

// SetActive включает или выключает приём записей к барберу
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, req *models.UpdateRequest) (*models.BarberResponse, error) {
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("SetActive: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.barberRepo.SetActive(ctx, id, *req.IsActive); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("SetActive: barber id=%s not found", id)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("SetActive: repository error for barber id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "SetActive")

	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("SetActive: failed to reload barber id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetActive - reload: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: barber id=%s isActive=%t", id, barber.IsActive)
	return models.FromDomainBarber(barber), nil
}

func (s *Service) invalidate(ctx context.Context, op string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("%s: failed to invalidate barbers cache: %v", op, err)
	}
}
