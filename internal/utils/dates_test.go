package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-11")
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))

	ts, err := ParseDate("2024-01-11T09:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 1, 11, 7, 30, 0, 0, time.UTC)))

	_, err = ParseDate("11/01/2024")
	assert.Error(t, err)

	_, err = ParseDate("  ")
	assert.Error(t, err)
}

func TestWholeDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, WholeDaysBetween(start, start.AddDate(0, 0, 10)))
	assert.Equal(t, 0, WholeDaysBetween(start, start.Add(23*time.Hour)))
	assert.Equal(t, -2, WholeDaysBetween(start, start.AddDate(0, 0, -2)))
}

func TestCeilDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, CeilDays(start, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, CeilDays(start, start.Add(time.Hour)))
	assert.Equal(t, 2, CeilDays(start, start.Add(25*time.Hour)))
	assert.Equal(t, 0, CeilDays(start, start))
	assert.Equal(t, 0, CeilDays(start, start.AddDate(0, 0, -5)))
}
