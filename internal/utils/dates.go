package utils

import (
	"fmt"
	"time"
)

// yearHours is the hour count used to convert calendar time to year fractions.
const yearHours = 365.0 * 24.0

// NextOptionsExpiration returns the next standard monthly options expiration
// (the third Friday):
// - Third Friday of current month if we haven't reached the expiration week yet
// - Third Friday of next month if we're in or past the expiration week
func NextOptionsExpiration(today time.Time) string {
	currentMonth := today.Month()
	currentYear := today.Year()

	thirdFriday := thirdFridayOf(currentYear, currentMonth, today.Location())

	// If current day is in the week of 3rd Friday or past it, use next month's 3rd Friday
	weekStart := thirdFriday.AddDate(0, 0, -7)

	if today.After(weekStart) || today.Equal(weekStart) {
		nextMonth := currentMonth + 1
		nextYear := currentYear
		if nextMonth > 12 {
			nextMonth = 1
			nextYear++
		}
		return thirdFridayOf(nextYear, nextMonth, today.Location()).Format("2006-01-02")
	}

	return thirdFriday.Format("2006-01-02")
}

func thirdFridayOf(year int, month time.Month, loc *time.Location) time.Time {
	firstFriday := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for firstFriday.Weekday() != time.Friday {
		firstFriday = firstFriday.AddDate(0, 0, 1)
	}
	return firstFriday.AddDate(0, 0, 14)
}

// HorizonUntil converts a YYYY-MM-DD expiration date into a year-fraction
// horizon measured from now. Dates in the past are an error.
func HorizonUntil(expiration string, now time.Time) (float64, error) {
	expiry, err := time.ParseInLocation("2006-01-02", expiration, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid expiration date %q: %w", expiration, err)
	}

	hours := expiry.Sub(now).Hours()
	if hours <= 0 {
		return 0, fmt.Errorf("expiration date %s is not in the future", expiration)
	}
	return hours / yearHours, nil
}
