package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

var ErrMediaNotFound = errors.New("media not found")

// UploadFile is one file of a bulk upload.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadResult reports a bulk upload; failed files are skipped, not fatal.
type UploadResult struct {
	Uploaded []models.Media `json:"uploaded"`
	Failed   []string       `json:"failed"` // file names that could not be stored
}

type MediaService interface {
	BulkUpload(ctx context.Context, eventID uuid.UUID, files []UploadFile, uploadedBy uuid.UUID) (*UploadResult, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, page, limit int) ([]models.Media, int64, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}
