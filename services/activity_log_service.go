package services

import (
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"

	"gorm.io/gorm"
)

type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

// Create inserts one timeline row. Activities are plain rows, not day
// buckets; "today" is answered with a creation-timestamp range query.
func (s *ActivityLogService) Create(userID uint, category, title, timeOfDay string) (*models.ActivityLog, error) {
	if category == "" || title == "" || timeOfDay == "" {
		return nil, Reject("Please provide category, title, and time")
	}
	if !models.ValidCategory(category) {
		return nil, Reject("Invalid category")
	}

	log := models.ActivityLog{
		UserID:   userID,
		Category: category,
		Title:    title,
		Time:     timeOfDay,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *ActivityLogService) Today(userID uint) ([]models.ActivityLog, error) {
	now := time.Now()

	var logs []models.ActivityLog
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, DayStart(now), DayEnd(now)).
		Order("time ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return logs, nil
}
