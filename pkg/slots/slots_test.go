package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

func ts(values ...string) []types.TimeString {
	result := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		result = append(result, types.TimeString(v))
	}
	return result
}

func TestGenerateSlots_FullDay(t *testing.T) {
	got, err := GenerateSlots("09:00", "18:00", 30)
	require.NoError(t, err)

	require.Len(t, got, 18)
	assert.Equal(t, types.TimeString("09:00"), got[0])
	assert.Equal(t, types.TimeString("17:30"), got[len(got)-1])
	assert.NotContains(t, got, types.TimeString("18:00"))
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end types.TimeString
	}{
		{name: "начало равно концу", start: "09:00", end: "09:00"},
		{name: "начало позже конца", start: "09:00", end: "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSlots(tt.start, tt.end, 30)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestGenerateSlots_StepNotDividingWindow(t *testing.T) {
	got, err := GenerateSlots("09:00", "10:00", 25)
	require.NoError(t, err)
	assert.Equal(t, ts("09:00", "09:25", "09:50"), got)
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	_, err := GenerateSlots("09:00", "18:00", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateSlots("09:00", "18:00", -30)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateSlots("9am", "18:00", 30)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateSlots("09:00", "24:00", 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFilterAvailable(t *testing.T) {
	all := ts("09:00", "09:30", "10:00")

	got := FilterAvailable(all, NewBookedSet("09:30"))
	assert.Equal(t, ts("09:00", "10:00"), got)

	// занятые слоты вне сетки игнорируются
	got = FilterAvailable(all, NewBookedSet("12:00", "09:00"))
	assert.Equal(t, ts("09:30", "10:00"), got)

	got = FilterAvailable(all, nil)
	assert.Equal(t, all, got)

	got = FilterAvailable(all, NewBookedSet("09:00", "09:30", "10:00"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeAvailability_NoWindow(t *testing.T) {
	got, err := ComputeAvailability(nil, NewBookedSet("09:00"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeAvailability_Properties(t *testing.T) {
	window := &TimeWindow{Start: "09:00", End: "18:00"}
	booked := NewBookedSet("09:00", "12:30", "17:30", "19:00")

	all, err := GenerateSlots(window.Start, window.End, DefaultStepMinutes)
	require.NoError(t, err)

	got, err := ComputeAvailability(window, booked)
	require.NoError(t, err)

	// |результат| = |сетка| - |занятые ∩ сетка|
	assert.Len(t, got, len(all)-3)

	// результат является подпоследовательностью сетки
	idx := 0
	for _, slot := range got {
		for idx < len(all) && all[idx] != slot {
			idx++
		}
		require.Less(t, idx, len(all), "slot %s is not in generated order", slot)
		assert.False(t, booked.Contains(slot))
		idx++
	}

	// повторный вызов с теми же аргументами даёт тот же результат
	again, err := ComputeAvailability(window, booked)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestComputeAvailabilityWithStep(t *testing.T) {
	window := &TimeWindow{Start: "10:00", End: "11:00"}

	got, err := ComputeAvailabilityWithStep(window, NewBookedSet("10:15"), 15)
	require.NoError(t, err)
	assert.Equal(t, ts("10:00", "10:30", "10:45"), got)

	_, err = ComputeAvailabilityWithStep(window, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
