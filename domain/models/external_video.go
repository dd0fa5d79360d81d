package models

import (
	"time"

	"github.com/google/uuid"
)

// ExternalVideo is a Google Drive video link registered for an event
// instead of uploading the file itself.
type ExternalVideo struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PersonName  string    `gorm:"not null"`
	DriveLink   string    `gorm:"not null"` // normalized preview link
	DriveFileID string    `gorm:"index"`
	Description string

	// Link availability, maintained by the scheduled link check
	Available     bool `gorm:"default:true"`
	LastCheckedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Event Event `gorm:"foreignKey:EventID"`
}

func (ExternalVideo) TableName() string {
	return "external_videos"
}
