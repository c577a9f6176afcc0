package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "da", "ar"}, r.Supported())

	_, err = Load("fr")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestRegistry_Match(t *testing.T) {
	r, err := Load("en")
	require.NoError(t, err)

	tests := []struct {
		name        string
		preferences []string
		want        string
	}{
		{name: "короткий тег", preferences: []string{"da"}, want: "da"},
		{name: "заголовок Accept-Language", preferences: []string{"ar-EG,ar;q=0.9,en;q=0.8"}, want: "ar"},
		{name: "региональный английский", preferences: []string{"en-GB"}, want: "en"},
		{name: "неподдерживаемый язык", preferences: []string{"fr"}, want: "en"},
		{name: "пусто", preferences: []string{""}, want: "en"},
		{name: "первое непустое предпочтение", preferences: []string{"", "da-DK"}, want: "da"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Match(tt.preferences...).Tag)
		})
	}
}

func TestLocale_FormatDate(t *testing.T) {
	r, err := Load("en")
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // понедельник

	en, _ := r.Get("en")
	assert.Equal(t, "Monday, March 10, 2025", en.FormatDate(date))

	da, _ := r.Get("da")
	assert.Equal(t, "mandag, marts 10, 2025", da.FormatDate(date))

	ar, _ := r.Get("ar")
	assert.Equal(t, "الاثنين، 10 مارس 2025", ar.FormatDate(date))
	assert.True(t, ar.IsRTL())

	weekday, day := en.FormatDayShort(date)
	assert.Equal(t, "Mon", weekday)
	assert.Equal(t, "10", day)

	assert.Equal(t, "tirsdag", da.WeekdayName(time.Tuesday))
}

func TestLocale_Message(t *testing.T) {
	r, err := Load("en")
	require.NoError(t, err)

	en, _ := r.Get("en")
	assert.Equal(t, "Hi John,", en.Message("confirmation_greeting", map[string]string{"name": "John"}))
	assert.Equal(t, "Booking Confirmed!", en.Message("confirmation_subject", nil))
	assert.Equal(t, "missing_key", en.Message("missing_key", nil))

	_, err = r.Get("sv")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}
