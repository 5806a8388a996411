package services

import (
	"errors"
	"time"

	"github.com/AshwinRamana/life-tracking-app/models"

	"gorm.io/gorm"
)

type JournalService struct {
	db *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{db: db}
}

// Append adds a timestamped entry to today's journal bucket. Entries are
// only ever appended; prior entries are never replaced.
func (s *JournalService) Append(userID uint, content string) (*models.JournalLog, error) {
	if content == "" {
		return nil, Reject("Content is required")
	}

	day := DayStart(time.Now())

	bucket := models.JournalLog{UserID: userID, Date: day}
	if err := s.db.Where("user_id = ? AND date = ?", userID, day).
		FirstOrCreate(&bucket).Error; err != nil {
		return nil, err
	}

	entry := models.JournalEntry{
		JournalLogID: bucket.ID,
		Content:      content,
		Timestamp:    time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	return s.load(bucket.ID)
}

// Today returns today's journal, or nil when the user has not written
// anything yet.
func (s *JournalService) Today(userID uint) (*models.JournalLog, error) {
	day := DayStart(time.Now())

	var bucket models.JournalLog
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&bucket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.load(bucket.ID)
}

func (s *JournalService) load(bucketID uint) (*models.JournalLog, error) {
	var bucket models.JournalLog
	if err := s.db.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("journal_entries.id ASC")
	}).First(&bucket, bucketID).Error; err != nil {
		return nil, err
	}
	if bucket.Entries == nil {
		bucket.Entries = []models.JournalEntry{}
	}
	return &bucket, nil
}
