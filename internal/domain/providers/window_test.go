package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampHours(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"in range", "12", 12},
		{"minimum", "1", 1},
		{"maximum", "168", 168},
		{"below minimum", "0", 1},
		{"negative", "-5", 1},
		{"above maximum", "500", 168},
		{"non-integer", "abc", 24},
		{"empty", "", 24},
		{"float", "2.5", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampHours(tt.raw))
		})
	}
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 45, 123456789, time.UTC)

	window := TrailingWindow(now, 24)

	assert.Equal(t, time.Date(2026, 8, 28, 10, 30, 45, 0, time.UTC), window.End)
	assert.Equal(t, time.Date(2026, 8, 27, 10, 30, 45, 0, time.UTC), window.Start)
}

func TestDayWindow(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	day := time.Date(2026, 8, 28, 15, 0, 0, 0, ist)
	window := DayWindow(day, ist)

	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, ist), window.Start)
	assert.Equal(t, time.Date(2026, 8, 28, 23, 59, 59, 0, ist), window.End)
}

func TestWindowFromQuery_HoursWinsOverDate(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, ist)

	window, err := WindowFromQuery("2026-01-01", "6", now, ist)
	require.NoError(t, err)

	assert.Equal(t, now, window.End)
	assert.Equal(t, now.Add(-6*time.Hour), window.Start)
}

func TestWindowFromQuery_ExplicitDate(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, ist)

	window, err := WindowFromQuery("2026-08-01", "", now, ist)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, ist), window.Start)
	assert.Equal(t, time.Date(2026, 8, 1, 23, 59, 59, 0, ist), window.End)
}

func TestWindowFromQuery_DefaultsToToday(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, ist)

	window, err := WindowFromQuery("", "", now, ist)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, ist), window.Start)
	assert.Equal(t, time.Date(2026, 8, 28, 23, 59, 59, 0, ist), window.End)
}

func TestWindowFromQuery_BadDate(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	_, err = WindowFromQuery("not-a-date", "", time.Now(), ist)
	assert.Error(t, err)
}
