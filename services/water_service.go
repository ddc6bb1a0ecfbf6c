package services

import (
	"errors"
	"time"

	"github.com/ram2117/Nutri-Track/models"

	"gorm.io/gorm"
)

// Window inside which an identical submission is treated as a
// double-click rather than a new entry.
const duplicateWindow = 3 * time.Second

const mlPerOz = 29.5735

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

// AddEntry records an intake event. A second identical (amount, unit)
// submission arriving within duplicateWindow returns the existing row;
// the boolean reports whether a new row was created.
func (s *WaterService) AddEntry(userID uint, amount float64, unit string) (*models.WaterEntry, bool, error) {
	var last models.WaterEntry
	err := s.db.
		Where("user_id = ? AND amount = ? AND unit = ? AND created_at > ?",
			userID, amount, unit, time.Now().Add(-duplicateWindow)).
		Order("created_at DESC").
		First(&last).Error
	if err == nil {
		return &last, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	entry := models.WaterEntry{
		UserID: userID,
		Amount: amount,
		Unit:   unit,
		Time:   time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, false, err
	}
	return &entry, true, nil
}

func (s *WaterService) ListToday(userID uint) ([]models.WaterEntry, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var entries []models.WaterEntry
	err := s.db.
		Where("user_id = ? AND time >= ?", userID, start).
		Order("time DESC").
		Find(&entries).Error
	return entries, err
}

func (s *WaterService) ListByTimeRange(userID uint, from, to time.Time) ([]models.WaterEntry, error) {
	var entries []models.WaterEntry
	err := s.db.
		Where("user_id = ? AND time >= ? AND time <= ?", userID, from, to).
		Order("time ASC").
		Find(&entries).Error
	return entries, err
}

func (s *WaterService) Delete(userID, entryID uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WaterEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TotalML sums entries normalized to milliliters.
func TotalML(entries []models.WaterEntry) float64 {
	var total float64
	for _, e := range entries {
		if e.Unit == "oz" {
			total += e.Amount * mlPerOz
		} else {
			total += e.Amount
		}
	}
	return total
}
