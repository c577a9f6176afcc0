package update_barber

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIsActive    = "поле isActive обязательно"
	msgNotFound           = "барбер не найден"
)

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(mux.Vars(r)["barberId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/barbers/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/barbers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetActive(r.Context(), barberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/barbers/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingIsActive)

		case errors.Is(err, barbers.ErrBarberNotFound):
			h.logger.Warn("PATCH /admin/barbers/{id} - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/barbers/{id} - Failed to update barber: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/barbers/{id} - Barber updated: barber_id=%s, is_active=%t", barberID, result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
