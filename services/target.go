package services

import (
	"strings"
	"time"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/utils"
)

// Biometrics are the inputs to the daily calorie target.
type Biometrics struct {
	Gender    string
	WeightKg  float64
	HeightCm  float64
	Birthdate time.Time
}

// TargetCalories computes the estimated daily energy requirement from the
// Harris-Benedict derived constants. Gender is matched case-insensitively;
// anything other than male/female yields a target of 0, which is a valid
// degenerate result rather than an error. Age is whole years at ref.
func TargetCalories(b Biometrics, ref time.Time) (float64, error) {
	if b.WeightKg <= 0 || b.HeightCm <= 0 {
		return 0, apperror.NewBadRequest("weight and height must be positive", nil)
	}
	if b.Birthdate.After(ref) {
		return 0, apperror.NewBadRequest("birthdate is in the future", nil)
	}

	age := float64(utils.CalculateAge(b.Birthdate, ref))
	switch strings.ToLower(b.Gender) {
	case "male":
		return 66.5 + 13.75*b.WeightKg + 5.003*b.HeightCm - 6.75*age, nil
	case "female":
		return 655.1 + 9.563*b.WeightKg + 1.85*b.HeightCm - 4.676*age, nil
	default:
		return 0, nil
	}
}
