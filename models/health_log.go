package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthLog holds one user-day of scalar metrics. Every field is
// independently updatable; an update that omits a field leaves the stored
// value alone.
type HealthLog struct {
	gorm.Model
	UserID       uint      `gorm:"uniqueIndex:idx_health_user_date;not null" json:"userId"`
	Date         time.Time `gorm:"uniqueIndex:idx_health_user_date;not null" json:"date"`
	Steps        int       `json:"steps"`
	SleepHours   float64   `json:"sleepHours"`
	SleepMinutes int       `json:"sleepMinutes"`
	Weight       float64   `json:"weight"`
	WaterIntake  int       `json:"waterIntake"` // ml
}
