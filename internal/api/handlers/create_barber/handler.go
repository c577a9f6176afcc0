package create_barber

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя барбера обязательно и не длиннее 100 символов"
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

// Handle POST /api/v1/admin/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("POST /admin/barbers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /admin/barbers - Failed to create barber: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/barbers - Barber created: barber_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
