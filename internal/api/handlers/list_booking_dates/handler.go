package list_booking_dates

import (
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	listBookingDates "github.com/m04kA/SMC-BarbershopService/internal/usecase/list_booking_dates"
)

type Handler struct {
	useCase ListBookingDatesUseCase
	logger  Logger
}

func NewHandler(useCase ListBookingDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-dates
// Query params: locale (опционально, иначе Accept-Language)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &listBookingDates.Request{
		Locale:         r.URL.Query().Get("locale"),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	})
	if err != nil {
		h.logger.Error("GET /booking-dates - Failed to list dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-dates - Dates listed: locale=%s, count=%d", result.Locale, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
