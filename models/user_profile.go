package models

import "gorm.io/gorm"

// UserProfile is created once during onboarding. Its absence is the
// signal that routes a freshly authenticated user to profile setup.
type UserProfile struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex;not null"`
	Name   string `gorm:"not null"`
	Age    int
	Gender string  `gorm:"size:16"` // "male" | "female" | "other"
	Height float64 // cm
	Weight float64 // kg
}
