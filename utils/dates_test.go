package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOrNow(t *testing.T) {
	got := ParseDateOrNow("2026-03-15")
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestParseDateOrNowFallsBack(t *testing.T) {
	for _, raw := range []string{"", "garbage", "15/03/2026"} {
		got := ParseDateOrNow(raw)
		assert.WithinDuration(t, time.Now(), got, time.Minute, raw)
	}
}

func TestAddDays(t *testing.T) {
	start := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-11", AddDays(start, 14).Format(ISODate))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 4, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, -3, DaysBetween(end, start))
	assert.Equal(t, 0, DaysBetween(start, start))
}
