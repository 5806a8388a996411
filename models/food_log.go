package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slots a food item can land in.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnacks    = "snacks"
)

func ValidMealSlot(s string) bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks:
		return true
	}
	return false
}

// FoodLog is the bucket document for one user-day: all food items for the
// day hang off a single row so the dashboard reads in one query.
// TotalCalories is maintained incrementally on append, not recomputed.
type FoodLog struct {
	gorm.Model
	UserID        uint       `gorm:"uniqueIndex:idx_food_user_date;not null" json:"userId"`
	Date          time.Time  `gorm:"uniqueIndex:idx_food_user_date;not null" json:"date"`
	Items         []FoodItem `json:"-"`
	TotalCalories int        `json:"totalCalories"`
}

type FoodItem struct {
	gorm.Model `json:"-"`
	FoodLogID  uint   `gorm:"index;not null" json:"-"`
	Slot       string `gorm:"not null" json:"-"`
	Name       string `gorm:"not null" json:"name"`
	Calories   int    `json:"calories"`
}
