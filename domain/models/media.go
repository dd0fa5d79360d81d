package models

import (
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

// Media is one stored photo or video of an event. Records are immutable
// after ingestion; the AI search only ever reads them.
type Media struct {
	ID       uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FileURL  string    `gorm:"not null"`
	FileType MediaType `gorm:"not null;index"`
	FileName string
	FileSize int64

	UploadedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time

	// Relations
	Event Event `gorm:"foreignKey:EventID"`
}

func (Media) TableName() string {
	return "media"
}
