package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

var (
	ErrInvalidDriveLink     = errors.New("link must be a Google Drive link")
	ErrExternalVideoMissing = errors.New("external video not found")
)

type AddExternalVideoInput struct {
	EventID     uuid.UUID
	PersonName  string
	DriveLink   string
	Description string
}

type ExternalVideoService interface {
	AddVideo(ctx context.Context, input *AddExternalVideoInput) (*models.ExternalVideo, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.ExternalVideo, error)
	RemoveVideo(ctx context.Context, id uuid.UUID) error

	// CheckLinks re-validates registered drive links and flags dead ones.
	// Returns how many were checked and how many are unavailable.
	CheckLinks(ctx context.Context) (checked int, unavailable int, err error)
}
