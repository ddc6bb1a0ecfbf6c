package models

import "gorm.io/gorm"

// Reminder mutations are broadcast on the realtime feed so multiple
// open sessions converge.
type Reminder struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Title  string `gorm:"not null"`
	Time   string `gorm:"size:5"`  // HH:MM
	Type   string `gorm:"size:16"` // medication|hydration|exercise|meal
}
