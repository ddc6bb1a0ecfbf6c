package models

import "gorm.io/gorm"

// MealEntry stores the nutrition snapshot confirmed after analysis.
// Entries are insert-only; history charts group them by Date.
type MealEntry struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	MealType string `gorm:"size:16"`       // breakfast|lunch|dinner|snack
	Date     string `gorm:"size:10;index"` // YYYY-MM-DD
	Time     string `gorm:"size:5"`        // HH:MM
	PhotoURL string
}
