package upsert_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные рабочего дня"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgBarberNotFound     = "барбер не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/barbers/{barberId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(mux.Vars(r)["barberId"])
	if err != nil {
		h.logger.Warn("PUT /admin/barbers/{id}/availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.UpsertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/barbers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), barberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /admin/barbers/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, availability.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/barbers/{id}/availability - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availability.ErrBarberNotFound):
			h.logger.Warn("PUT /admin/barbers/{id}/availability - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("PUT /admin/barbers/{id}/availability - Failed to upsert: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/barbers/{id}/availability - Availability saved: barber_id=%s, date=%s, available=%t",
		barberID, result.Date, result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, result)
}
