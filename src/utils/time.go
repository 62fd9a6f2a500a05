package utils

import "time"

// DaysToExpiration returns the calendar days between now and the
// expiration date, never negative.
func DaysToExpiration(now, expiration time.Time) int {
	days := int(expiration.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// YearsFromDays converts calendar days to years on a 365-day basis.
func YearsFromDays(days int) float64 {
	return float64(days) / 365.0
}
