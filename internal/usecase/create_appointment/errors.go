package create_appointment

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrBarberInactive возвращается, когда барбер не принимает записи
	ErrBarberInactive = errors.New("create_appointment: barber is not accepting appointments")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	ErrDateOutOfRange = errors.New("create_appointment: date is outside the booking window")

	// ErrBarberUnavailable возвращается, когда барбер не работает в указанную дату
	ErrBarberUnavailable = errors.New("create_appointment: barber is not available on this date")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом рабочего окна
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
