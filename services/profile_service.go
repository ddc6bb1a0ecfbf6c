package services

import (
	"errors"

	"github.com/ram2117/Nutri-Track/models"

	"gorm.io/gorm"
)

var ErrProfileExists = errors.New("profile already exists")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type ProfileInput struct {
	Name   string  `json:"name" binding:"required"`
	Age    int     `json:"age" binding:"required,gt=0"`
	Gender string  `json:"gender" binding:"required,oneof=male female other"`
	Height float64 `json:"height" binding:"required,gt=0"` // cm
	Weight float64 `json:"weight" binding:"required,gt=0"` // kg
}

// HasProfile backs the post-login routing decision: users without a
// profile are sent to profile setup.
func (s *ProfileService) HasProfile(userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (s *ProfileService) Create(userID uint, in ProfileInput) (*models.UserProfile, error) {
	exists, err := s.HasProfile(userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProfileExists
	}

	profile := models.UserProfile{
		UserID: userID,
		Name:   in.Name,
		Age:    in.Age,
		Gender: in.Gender,
		Height: in.Height,
		Weight: in.Weight,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Get returns nil without an error when no profile exists yet.
func (s *ProfileService) Get(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
