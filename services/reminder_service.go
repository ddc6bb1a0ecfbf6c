package services

import (
	"github.com/ram2117/Nutri-Track/models"

	"gorm.io/gorm"
)

// ReminderService keeps reminder rows and their change feed in sync:
// every mutation is broadcast to the user's open sessions and pushed
// to registered devices.
type ReminderService struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService // optional
}

func NewReminderService(db *gorm.DB, hub *RealtimeHub, push *PushService) *ReminderService {
	return &ReminderService{db: db, hub: hub, push: push}
}

type ReminderInput struct {
	Title string `json:"title" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=medication hydration exercise meal"`
}

func (s *ReminderService) List(userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reminders).Error
	return reminders, err
}

func (s *ReminderService) Create(userID uint, in ReminderInput) (*models.Reminder, error) {
	reminder := models.Reminder{
		UserID: userID,
		Title:  in.Title,
		Time:   in.Time,
		Type:   in.Type,
	}
	if err := s.db.Create(&reminder).Error; err != nil {
		return nil, err
	}

	s.hub.BroadcastReminder(userID, "INSERT", reminder)
	if s.push != nil {
		s.push.PushToUser(userID, "New Reminder", reminder.Title, map[string]string{
			"type": reminder.Type, "time": reminder.Time,
		})
	}
	return &reminder, nil
}

func (s *ReminderService) Update(userID, reminderID uint, in ReminderInput) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := s.db.
		Where("id = ? AND user_id = ?", reminderID, userID).
		First(&reminder).Error; err != nil {
		return nil, err
	}

	reminder.Title = in.Title
	reminder.Time = in.Time
	reminder.Type = in.Type
	if err := s.db.Save(&reminder).Error; err != nil {
		return nil, err
	}

	s.hub.BroadcastReminder(userID, "UPDATE", reminder)
	return &reminder, nil
}

func (s *ReminderService) Delete(userID, reminderID uint) error {
	var reminder models.Reminder
	if err := s.db.
		Where("id = ? AND user_id = ?", reminderID, userID).
		First(&reminder).Error; err != nil {
		return err
	}

	if err := s.db.Delete(&reminder).Error; err != nil {
		return err
	}

	s.hub.BroadcastReminder(userID, "DELETE", map[string]any{"id": reminder.ID})
	return nil
}
