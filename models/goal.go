package models

import (
	"time"

	"gorm.io/gorm"
)

type Goal struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Title     string    `gorm:"not null" json:"title"`
	DueDate   time.Time `json:"dueDate"`
	Completed bool      `gorm:"default:false" json:"completed"`
}
