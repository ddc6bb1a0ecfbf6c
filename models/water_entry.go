package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Amount float64   // in the entry's unit
	Unit   string    `gorm:"size:4"` // "ml" | "oz"
	Time   time.Time `gorm:"index"`
}
