package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchLog records one completed AI photo search for admin visibility.
type SearchLog struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID       uuid.UUID `gorm:"type:uuid;index"`
	Mode          string    // face, text, none
	PhotoCount    int
	BatchCount    int
	FailedBatches int
	MatchCount    int
	DurationMs    int64

	CreatedAt time.Time
}

func (SearchLog) TableName() string {
	return "search_logs"
}
