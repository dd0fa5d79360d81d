package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"event-gallery/domain/models"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Media{},
		&models.ExternalVideo{},
		&models.SearchLog{},
	); err != nil {
		return fmt.Errorf("failed to run auto migrations: %v", err)
	}

	// Composite index backing the photo catalog lookup used by AI search
	if err := db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_media_event_type ON media(event_id, file_type)`,
	).Error; err != nil {
		return fmt.Errorf("failed to create media index: %v", err)
	}

	return nil
}
