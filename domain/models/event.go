package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title         string    `gorm:"not null"`
	Description   string
	EventDate     time.Time `gorm:"index"`
	CoverImageURL string
	CreatedBy     uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Media          []Media         `gorm:"foreignKey:EventID"`
	ExternalVideos []ExternalVideo `gorm:"foreignKey:EventID"`
}

func (Event) TableName() string {
	return "events"
}
