package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary is the AI-written recap, one per user-day, overwritten on
// regeneration.
type DailySummary struct {
	gorm.Model
	UserID         uint      `gorm:"uniqueIndex:idx_summary_user_date;not null" json:"userId"`
	Date           time.Time `gorm:"uniqueIndex:idx_summary_user_date;not null" json:"date"`
	SummaryContent string    `gorm:"not null" json:"summaryContent"`
	MoodScore      int       `gorm:"default:5" json:"moodScore"` // AI estimated mood 1-10
	ActionItems    []string  `gorm:"serializer:json" json:"actionItems"`
}
