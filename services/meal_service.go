package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ram2117/Nutri-Track/models"
	"github.com/ram2117/Nutri-Track/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealEntryInput struct {
	Name        string `json:"name" binding:"required"`
	Calories    string `json:"calories"`
	Protein     string `json:"protein"`
	Carbs       string `json:"carbs"`
	Fat         string `json:"fat"`
	MealType    string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	ImageBase64 string `json:"image_base64"`
}

// AddEntry persists a confirmed analysis as a meal row, stamped with
// the current local date and time. The photo upload is best-effort:
// the entry is saved without a photo URL if storage fails.
func (s *MealService) AddEntry(userID uint, in MealEntryInput) (*models.MealEntry, error) {
	now := time.Now()

	entry := models.MealEntry{
		UserID:   userID,
		Name:     in.Name,
		Calories: parseAmount(in.Calories),
		Protein:  parseAmount(in.Protein),
		Carbs:    parseAmount(in.Carbs),
		Fat:      parseAmount(in.Fat),
		MealType: in.MealType,
		Date:     now.Format("2006-01-02"),
		Time:     now.Format("15:04"),
	}

	if in.ImageBase64 != "" {
		url, err := utils.UploadMealPhoto(in.ImageBase64, userID)
		if err != nil {
			log.Printf("meal photo upload failed: %v", err)
		} else {
			entry.PhotoURL = url
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MealService) ListByDate(userID uint, date string) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("time DESC").
		Find(&entries).Error
	return entries, err
}

// ListSinceDate returns entries with date >= from, newest first. The
// dashboard uses a one-week window.
func (s *MealService) ListSinceDate(userID uint, from string) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date DESC, time DESC").
		Find(&entries).Error
	return entries, err
}

func (s *MealService) ListByDateRange(userID uint, from, to string) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// parseAmount extracts the leading number from a display string such
// as "250 kcal" or "12g". Unparsable input counts as zero.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0
	}
	return v
}
