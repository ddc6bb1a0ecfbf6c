package services

import (
	"errors"

	"github.com/ram2117/Nutri-Track/models"

	"gorm.io/gorm"
)

const defaultDailyWaterGoal = 2500 // ml

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetOrCreate returns the user's settings row, creating it with the
// default water goal on first access.
func (s *SettingsService) GetOrCreate(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.UserSettings{UserID: userID, DailyWaterGoal: defaultDailyWaterGoal}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsService) UpdateWaterGoal(userID uint, goal float64) (*models.UserSettings, error) {
	settings, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	settings.DailyWaterGoal = goal
	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
