package models

import "gorm.io/gorm"

// UserSettings holds at most one row per user, created lazily with
// defaults on first water-tracking access.
type UserSettings struct {
	gorm.Model
	UserID         uint    `gorm:"uniqueIndex;not null"`
	DailyWaterGoal float64 // ml, defaults to 2500
}
