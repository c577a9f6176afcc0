package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequest    = "некорректное тело запроса"
	msgInvalidInput      = "некорректные данные записи"
	msgBarberNotFound    = "барбер не найден"
	msgBarberInactive    = "барбер не принимает записи"
	msgBarberUnavailable = "барбер не работает в выбранный день"
	msgDateOutOfRange    = "на выбранную дату запись недоступна"
	msgInvalidTimeSlot   = "выбранное время не совпадает с сеткой слотов"
	msgSlotNotAvailable  = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Парсим тело запроса
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(r.Header.Get("Accept-Language"))
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: barber_id=%s, date=%s, time=%s",
				req.BarberID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrBarberInactive):
			h.logger.Warn("POST /appointments - Barber inactive: barber_id=%s", req.BarberID)
			handlers.RespondBadRequest(w, msgBarberInactive)

		case errors.Is(err, createAppointment.ErrBarberUnavailable):
			h.logger.Warn("POST /appointments - Barber unavailable: barber_id=%s, date=%s", req.BarberID, req.Date)
			handlers.RespondBadRequest(w, msgBarberUnavailable)

		case errors.Is(err, createAppointment.ErrDateOutOfRange):
			h.logger.Warn("POST /appointments - Date out of range: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: barber_id=%s, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, barber_id=%s, date=%s, time=%s",
		result.ID, result.BarberID, req.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
