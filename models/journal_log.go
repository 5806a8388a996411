package models

import (
	"time"

	"gorm.io/gorm"
)

// JournalLog buckets a user-day of journal entries. Entries are append
// only; nothing ever rewrites or removes one.
type JournalLog struct {
	gorm.Model
	UserID  uint           `gorm:"uniqueIndex:idx_journal_user_date;not null" json:"userId"`
	Date    time.Time      `gorm:"uniqueIndex:idx_journal_user_date;not null" json:"date"`
	Entries []JournalEntry `json:"entries"`
}

type JournalEntry struct {
	gorm.Model   `json:"-"`
	JournalLogID uint      `gorm:"index;not null" json:"-"`
	Content      string    `gorm:"not null" json:"content"`
	Timestamp    time.Time `json:"timestamp"`
}
