package dto

import (
	"time"

	"github.com/google/uuid"
)

// MediaResponse is the DTO for media API responses
type MediaResponse struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	FileURL   string    `json:"file_url"`
	FileType  string    `json:"file_type"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

// MediaListResponse is the DTO for paginated media list
type MediaListResponse struct {
	Media []MediaResponse `json:"media"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ExternalVideoResponse is the DTO for external video API responses
type ExternalVideoResponse struct {
	ID          uuid.UUID `json:"id"`
	EventID     uuid.UUID `json:"event_id"`
	PersonName  string    `json:"person_name"`
	DriveLink   string    `json:"drive_link"`
	Description string    `json:"description,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}
