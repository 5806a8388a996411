package services

import (
	"errors"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) Create(userID uint, title string, dueDate time.Time) (*models.Goal, error) {
	if title == "" {
		return nil, Reject("Title is required")
	}

	goal := models.Goal{UserID: userID, Title: title, DueDate: dueDate}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListOpen returns incomplete goals, soonest due first.
func (s *GoalService) ListOpen(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.
		Where("user_id = ? AND completed = ?", userID, false).
		Order("due_date ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

func (s *GoalService) SetCompleted(userID, goalID uint, completed bool) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Reject("Goal not found")
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&goal).Update("completed", completed).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
