package utils

import (
	"math"
	"time"
)

// CalculateAge returns whole years between birthdate and ref, using the mean
// Gregorian year length to absorb leap years.
func CalculateAge(birthdate, ref time.Time) int {
	days := ref.Sub(birthdate).Hours() / 24
	return int(math.Floor(days / 365.2425))
}
