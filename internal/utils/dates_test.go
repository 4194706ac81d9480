package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOptionsExpiration(t *testing.T) {
	loc := time.UTC

	// Early August 2026: third Friday is Aug 21, expiration week starts Aug 14.
	early := time.Date(2026, time.August, 3, 0, 0, 0, 0, loc)
	assert.Equal(t, "2026-08-21", NextOptionsExpiration(early))

	// Inside the expiration week, roll to September's third Friday.
	inWeek := time.Date(2026, time.August, 17, 0, 0, 0, 0, loc)
	assert.Equal(t, "2026-09-18", NextOptionsExpiration(inWeek))

	// December rolls into January of the next year.
	lateDec := time.Date(2026, time.December, 20, 0, 0, 0, 0, loc)
	assert.Equal(t, "2027-01-15", NextOptionsExpiration(lateDec))
}

func TestHorizonUntil(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	horizon, err := HorizonUntil("2027-08-29", now)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, horizon, 1e-9)

	horizon, err = HorizonUntil("2026-09-28", now)
	require.NoError(t, err)
	assert.InDelta(t, 30.0/365.0, horizon, 1e-9)
}

func TestHorizonUntilRejectsBadInput(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	_, err := HorizonUntil("not-a-date", now)
	assert.Error(t, err)

	_, err = HorizonUntil("2026-08-01", now)
	assert.Error(t, err)
}
