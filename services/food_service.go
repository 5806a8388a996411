package services

import (
	"errors"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// FoodDay is the wire shape of one day's bucket: the four named meal
// lists plus the running total.
type FoodDay struct {
	Breakfast     []models.FoodItem `json:"breakfast"`
	Lunch         []models.FoodItem `json:"lunch"`
	Dinner        []models.FoodItem `json:"dinner"`
	Snacks        []models.FoodItem `json:"snacks"`
	TotalCalories int               `json:"totalCalories"`
}

// EmptyFoodDay is the zero-data wire shape returned before the first
// food write of the day.
func EmptyFoodDay() *FoodDay {
	return &FoodDay{
		Breakfast: []models.FoodItem{},
		Lunch:     []models.FoodItem{},
		Dinner:    []models.FoodItem{},
		Snacks:    []models.FoodItem{},
	}
}

// AddItem appends a food item to today's bucket, creating the bucket on
// first write, and bumps the running total by the item's calories. The
// total is deliberately incremental: nothing recomputes it from the item
// lists, and since items are never removed or edited the two cannot
// diverge.
func (s *FoodService) AddItem(userID uint, mealType, name string, calories int) (*FoodDay, error) {
	if !models.ValidMealSlot(mealType) {
		return nil, Reject("Invalid meal type")
	}

	day := DayStart(time.Now())

	var bucket models.FoodLog
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&bucket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		bucket = models.FoodLog{UserID: userID, Date: day}
		if err := s.db.Create(&bucket).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	item := models.FoodItem{FoodLogID: bucket.ID, Slot: mealType, Name: name, Calories: calories}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&bucket).
		UpdateColumn("total_calories", gorm.Expr("total_calories + ?", calories)).Error; err != nil {
		return nil, err
	}

	return s.loadDay(bucket.ID)
}

// Today returns today's bucket grouped by meal slot, or nil when the
// user has not logged food yet.
func (s *FoodService) Today(userID uint) (*FoodDay, error) {
	day := DayStart(time.Now())

	var bucket models.FoodLog
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&bucket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.loadDay(bucket.ID)
}

func (s *FoodService) loadDay(bucketID uint) (*FoodDay, error) {
	var bucket models.FoodLog
	if err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("food_items.id ASC")
	}).First(&bucket, bucketID).Error; err != nil {
		return nil, err
	}

	day := EmptyFoodDay()
	day.TotalCalories = bucket.TotalCalories
	for _, it := range bucket.Items {
		switch it.Slot {
		case models.SlotBreakfast:
			day.Breakfast = append(day.Breakfast, it)
		case models.SlotLunch:
			day.Lunch = append(day.Lunch, it)
		case models.SlotDinner:
			day.Dinner = append(day.Dinner, it)
		case models.SlotSnacks:
			day.Snacks = append(day.Snacks, it)
		}
	}
	return day, nil
}
