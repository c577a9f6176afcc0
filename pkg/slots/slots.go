// Package slots рассчитывает свободные временные слоты барбера на один день.
//
// Пакет не имеет состояния и зависимостей от хранилища: окно доступности и
// множество занятых слотов передаются вызывающей стороной. Все функции
// безопасны для вызова из любых горутин.
package slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// DefaultStepMinutes шаг сетки слотов по умолчанию
const DefaultStepMinutes = 30

// ErrInvalidInput возвращается при некорректном времени или шаге
var ErrInvalidInput = errors.New("slots: invalid input")

// TimeWindow окно работы барбера в пределах одного дня.
// Начало включается, конец нет: [Start, End).
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// BookedSet множество уже занятых слотов для пары (барбер, дата)
type BookedSet map[types.TimeString]struct{}

// NewBookedSet собирает множество из списка времён
func NewBookedSet(times ...types.TimeString) BookedSet {
	set := make(BookedSet, len(times))
	for _, t := range times {
		set[t] = struct{}{}
	}
	return set
}

// Contains проверяет, занят ли слот
func (b BookedSet) Contains(t types.TimeString) bool {
	_, ok := b[t]
	return ok
}

// GenerateSlots строит сетку слотов от start до end с шагом stepMinutes.
// Первый слот равен start, end в результат никогда не попадает.
// При start >= end возвращается пустой список (это не ошибка).
func GenerateSlots(start, end types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidInput, stepMinutes)
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}

	if startMinutes >= endMinutes {
		return []types.TimeString{}, nil
	}

	result := make([]types.TimeString, 0, (endMinutes-startMinutes+stepMinutes-1)/stepMinutes)
	for current := startMinutes; current < endMinutes; current += stepMinutes {
		slot, err := types.FromMinutes(current)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		result = append(result, slot)
	}

	return result, nil
}

// FilterAvailable убирает из all все слоты, присутствующие в booked.
// Порядок сохраняется, лишние элементы booked игнорируются.
func FilterAvailable(all []types.TimeString, booked BookedSet) []types.TimeString {
	result := make([]types.TimeString, 0, len(all))
	for _, slot := range all {
		if booked.Contains(slot) {
			continue
		}
		result = append(result, slot)
	}
	return result
}

// ComputeAvailability возвращает свободные слоты с шагом DefaultStepMinutes.
// Если окна нет (барбер не отметил доступность), слотов нет.
func ComputeAvailability(window *TimeWindow, booked BookedSet) ([]types.TimeString, error) {
	return ComputeAvailabilityWithStep(window, booked, DefaultStepMinutes)
}

// ComputeAvailabilityWithStep то же, что ComputeAvailability, с явным шагом сетки
func ComputeAvailabilityWithStep(window *TimeWindow, booked BookedSet, stepMinutes int) ([]types.TimeString, error) {
	if window == nil {
		return []types.TimeString{}, nil
	}

	all, err := GenerateSlots(window.Start, window.End, stepMinutes)
	if err != nil {
		return nil, err
	}

	return FilterAvailable(all, booked), nil
}
