package dto

import (
	"time"

	"github.com/google/uuid"
)

// EventResponse is the DTO for event API responses
type EventResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	EventDate     time.Time `json:"event_date"`
	CoverImageURL string    `json:"cover_image_url"`
	PhotoCount    int64     `json:"photo_count"`
	VideoCount    int64     `json:"video_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventListResponse is the DTO for paginated event list
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}
