package domain

import "time"

// BookingWindow диапазон дат, на которые клиент может записаться.
// Первая доступная дата: сегодня + MinDaysAhead, всего HorizonDays дат подряд.
type BookingWindow struct {
	MinDaysAhead int
	HorizonDays  int
}

// DefaultBookingWindow окно по умолчанию: 14 дней начиная с завтрашнего
func DefaultBookingWindow() BookingWindow {
	return BookingWindow{MinDaysAhead: DefaultMinDaysAhead, HorizonDays: DefaultHorizonDays}
}

// DateOnly отбрасывает время, сохраняя календарную дату (в UTC)
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// First первая дата, доступная для записи
func (w BookingWindow) First(now time.Time) time.Time {
	return DateOnly(now).AddDate(0, 0, w.MinDaysAhead)
}

// Last последняя дата, доступная для записи
func (w BookingWindow) Last(now time.Time) time.Time {
	return w.First(now).AddDate(0, 0, w.HorizonDays-1)
}

// Contains проверяет, что дата попадает в окно бронирования
func (w BookingWindow) Contains(date, now time.Time) bool {
	day := DateOnly(date)
	return !day.Before(w.First(now)) && !day.After(w.Last(now))
}

// Dates перечисляет все даты окна по возрастанию
func (w BookingWindow) Dates(now time.Time) []time.Time {
	if w.HorizonDays <= 0 {
		return []time.Time{}
	}
	first := w.First(now)
	result := make([]time.Time, 0, w.HorizonDays)
	for i := 0; i < w.HorizonDays; i++ {
		result = append(result, first.AddDate(0, 0, i))
	}
	return result
}
