package models

import (
	"gorm.io/gorm"
)

// Activity categories shown on the timeline.
const (
	CategoryWork    = "Work"
	CategoryFood    = "Food"
	CategoryFitness = "Fitness"
	CategorySocial  = "Social"
	CategoryRest    = "Rest"
	CategoryOther   = "Other"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryWork, CategoryFood, CategoryFitness, CategorySocial, CategoryRest, CategoryOther:
		return true
	}
	return false
}

// ActivityLog is one row per logged activity, not a day bucket. "Today"
// queries filter on CreatedAt.
type ActivityLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Category string `gorm:"not null" json:"category"`
	Title    string `gorm:"not null" json:"title"`
	Time     string `gorm:"not null" json:"time"` // display string, e.g. "08:30 AM"
}
