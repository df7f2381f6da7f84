package services

import (
	"testing"

	"epoch-backend/config"
	"epoch-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
// A single connection keeps the memory database alive and stable under the
// concurrent booking tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedDay(t *testing.T, db *gorm.DB, date string, available bool, max, current int) models.AvailabilityDay {
	t.Helper()
	day := models.AvailabilityDay{
		Date:            date,
		IsAvailable:     available,
		MaxBookings:     max,
		CurrentBookings: current,
	}
	if err := db.Create(&day).Error; err != nil {
		t.Fatalf("seed availability day: %v", err)
	}
	return day
}
