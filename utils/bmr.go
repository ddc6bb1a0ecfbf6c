package utils

import (
	"math"

	"github.com/ram2117/Nutri-Track/models"
)

const (
	// DefaultRecommendedCalories is used when no profile exists yet.
	DefaultRecommendedCalories = 2000

	// Assumed moderate activity level applied on top of the BMR.
	activityFactor = 1.55
)

// RecommendedCalories estimates a daily calorie target from the stored
// profile using the Mifflin-St Jeor basal-rate equation.
// TODO: replace with an estimate that accounts for the user's actual
// activity level instead of a fixed 1.55 multiplier.
func RecommendedCalories(p *models.UserProfile) int {
	if p == nil {
		return DefaultRecommendedCalories
	}

	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	return int(math.Round(bmr * activityFactor))
}

// ProgressPercent reports current/goal as a percentage, clamped to 100
// even when cumulative intake exceeds the goal.
func ProgressPercent(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := math.Round((current / goal) * 100.0)
	if p > 100 {
		return 100
	}
	return p
}
