package services

import (
	"errors"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"

	"gorm.io/gorm"
)

type HealthService struct {
	db *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

// HealthUpdate carries only the fields the caller actually provided.
// A nil field leaves the stored value untouched.
type HealthUpdate struct {
	Steps        *int
	SleepHours   *float64
	SleepMinutes *int
	Weight       *float64
	WaterIntake  *int
}

// Upsert finds or creates today's health bucket and merges in the
// provided fields only.
func (s *HealthService) Upsert(userID uint, u HealthUpdate) (*models.HealthLog, error) {
	day := DayStart(time.Now())

	bucket := models.HealthLog{UserID: userID, Date: day}
	if err := s.db.Where("user_id = ? AND date = ?", userID, day).
		FirstOrCreate(&bucket).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if u.Steps != nil {
		updates["steps"] = *u.Steps
	}
	if u.SleepHours != nil {
		updates["sleep_hours"] = *u.SleepHours
	}
	if u.SleepMinutes != nil {
		updates["sleep_minutes"] = *u.SleepMinutes
	}
	if u.Weight != nil {
		updates["weight"] = *u.Weight
	}
	if u.WaterIntake != nil {
		updates["water_intake"] = *u.WaterIntake
	}

	if len(updates) > 0 {
		if err := s.db.Model(&bucket).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var out models.HealthLog
	if err := s.db.First(&out, bucket.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Today returns today's bucket, or nil when nothing is logged yet.
func (s *HealthService) Today(userID uint) (*models.HealthLog, error) {
	day := DayStart(time.Now())

	var bucket models.HealthLog
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&bucket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bucket, nil
}
