package config

import (
	"fmt"
	"log"
	"os"

	"github.com/AshwinRamana/life-tracking-app/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB loads the environment, opens the Postgres connection and runs
// migrations. The returned handle is owned by main and passed into every
// service; nothing else in the codebase holds a package-level connection.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, reading environment directly")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// Migrate is separate from InitDB so tests can run it against their own
// database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodLog{},
		&models.FoodItem{},
		&models.HealthLog{},
		&models.JournalLog{},
		&models.JournalEntry{},
		&models.ActivityLog{},
		&models.Goal{},
		&models.DailySummary{},
	)
}
