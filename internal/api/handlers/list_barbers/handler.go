package list_barbers

import (
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
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

// HandlePublic GET /api/v1/barbers
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Barbers listed: count=%d", len(result.Barbers))
	handlers.RespondJSON(w, http.StatusOK, ToPublicResponse(result))
}

// HandleAdmin GET /api/v1/admin/barbers
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/barbers - Barbers listed: count=%d", len(result.Barbers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
