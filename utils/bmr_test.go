package utils

import (
	"testing"

	"github.com/ram2117/Nutri-Track/models"

	"github.com/stretchr/testify/assert"
)

func TestRecommendedCalories(t *testing.T) {
	male := &models.UserProfile{Age: 30, Gender: "male", Height: 180, Weight: 80}
	// round((10*80 + 6.25*180 - 5*30 + 5) * 1.55)
	assert.Equal(t, 2759, RecommendedCalories(male))

	female := &models.UserProfile{Age: 30, Gender: "female", Height: 180, Weight: 80}
	// additive constant -161 instead of +5
	assert.Equal(t, 2502, RecommendedCalories(female))

	other := &models.UserProfile{Age: 30, Gender: "other", Height: 180, Weight: 80}
	assert.Equal(t, 2502, RecommendedCalories(other))
}

func TestRecommendedCaloriesDefaultsWithoutProfile(t *testing.T) {
	assert.Equal(t, 2000, RecommendedCalories(nil))
}

func TestProgressPercentClampsAt100(t *testing.T) {
	assert.Equal(t, 50.0, ProgressPercent(1250, 2500))
	assert.Equal(t, 100.0, ProgressPercent(2500, 2500))
	assert.Equal(t, 100.0, ProgressPercent(9000, 2500))
	assert.Equal(t, 0.0, ProgressPercent(500, 0))
}
