package get_available_slots

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("get_available_slots: barber not found")

	// ErrBarberInactive возвращается, когда барбер не принимает записи
	ErrBarberInactive = errors.New("get_available_slots: barber is not accepting appointments")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	ErrDateOutOfRange = errors.New("get_available_slots: date is outside the booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
