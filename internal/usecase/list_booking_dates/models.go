package list_booking_dates

import "time"

// Request модель запроса дат для записи.
// Locale имеет приоритет над AcceptLanguage.
type Request struct {
	Locale         string
	AcceptLanguage string
}

// BookingDate дата, доступная для выбора клиентом
type BookingDate struct {
	Date    time.Time // Дата (полночь UTC)
	Weekday string    // Короткое название дня недели
	Day     string    // Число месяца
	Label   string    // Полная подпись даты
}

// Response модель ответа
type Response struct {
	Locale    string
	Direction string
	Dates     []BookingDate
}
