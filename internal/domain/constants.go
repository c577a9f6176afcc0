package domain

// Значения по умолчанию для окна бронирования
const (
	DefaultSlotStepMinutes = 30
	DefaultMinDaysAhead    = 1  // запись возможна начиная с завтрашнего дня
	DefaultHorizonDays     = 14 // сколько дат предлагается клиенту
)

// Ограничения на данные клиента
const (
	MinCustomerNameLength  = 2
	MaxCustomerNameLength  = 100
	MinCustomerPhoneLength = 10
	MaxCustomerPhoneLength = 20
	MaxBarberNameLength    = 100
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Рабочие часы, подставляемые при первой отметке доступности без явного времени
const (
	DefaultWorkdayStart = "09:00"
	DefaultWorkdayEnd   = "18:00"
)
