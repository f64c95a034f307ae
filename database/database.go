package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aastu-dms/DMSystem/config"
	"github.com/aastu-dms/DMSystem/models"
)

var DB *gorm.DB

// Connect opens the Postgres connection and migrates the schema.
// Fails hard if the database is not reachable.
func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("auto-migrate failed: %v", err)
	}
}

// Migrate applies the schema for all models. Split out so tests can run
// the same migration against their own gorm.DB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Application{},
		&models.Room{},
		&models.Phase{},
		&models.Announcement{},
	)
}
