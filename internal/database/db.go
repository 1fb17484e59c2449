package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/models"
)

var (
	// ErrNotFound is returned by every store when the requested row is absent.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert hits an existing primary or unique key.
	ErrDuplicate = errors.New("record already exists")
)

// Connect opens the Postgres connection and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Company{}, &models.Job{}, &models.RecommendedField{}, &models.JobEvent{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
