package list_booking_dates

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// UseCase перечисляет даты окна бронирования с локализованными подписями
type UseCase struct {
	locales      Locales
	window       domain.BookingWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(locales Locales, window domain.BookingWindow, logger Logger) *UseCase {
	return &UseCase{
		locales:      locales,
		window:       window,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	// 1. Выбираем локаль
	loc := uc.locales.Match(req.Locale, req.AcceptLanguage)

	// 2. Строим список дат окна бронирования
	dates := uc.window.Dates(uc.timeProvider.Now())
	result := make([]BookingDate, 0, len(dates))
	for _, date := range dates {
		weekday, day := loc.FormatDayShort(date)
		result = append(result, BookingDate{
			Date:    date,
			Weekday: weekday,
			Day:     day,
			Label:   loc.FormatDate(date),
		})
	}

	uc.logger.Info("ListBookingDates: %d dates, locale=%s", len(result), loc.Tag)

	return &Response{
		Locale:    loc.Tag,
		Direction: loc.Direction,
		Dates:     result,
	}, nil
}
