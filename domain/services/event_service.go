package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

var ErrEventNotFound = errors.New("event not found")

type CreateEventInput struct {
	Title       string
	Description string
	EventDate   time.Time
	CreatedBy   uuid.UUID

	// Optional cover image uploaded alongside the form
	CoverImage     []byte
	CoverImageName string
	CoverImageType string
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	EventDate   *time.Time
}

// EventWithCounts pairs an event with its media totals for listings.
type EventWithCounts struct {
	Event      models.Event
	PhotoCount int64
	VideoCount int64
}

type EventService interface {
	CreateEvent(ctx context.Context, input *CreateEventInput) (*models.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetEventWithCounts(ctx context.Context, id uuid.UUID) (*EventWithCounts, error)
	ListEvents(ctx context.Context, page, limit int) ([]EventWithCounts, int64, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, input *UpdateEventInput) (*models.Event, error)

	// DeleteEvent removes the event, its media rows, its external videos
	// and best-effort deletes the stored files
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}
