package database

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ChenTim1011/DB-Final-Project/internal/config"
	"github.com/ChenTim1011/DB-Final-Project/internal/models"
)

// ConnectDB opens the sqlite database file, turns on foreign-key enforcement
// and brings the schema up to date. AutoMigrate only creates what is missing,
// so calling this on every startup is idempotent.
func ConnectDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Info("connected to the database", "path", cfg.DatabaseURL)
	return db, nil
}

// Migrate creates the tables and secondary indexes if they are absent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Author{},
		&models.Book{},
		&models.ReadingHistory{},
		&models.ReadingPlan{},
		&models.Note{},
		&models.FavoriteList{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
