package repositories

import (
	"context"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

type MediaRepository interface {
	// CRUD
	Create(ctx context.Context, media *models.Media) error
	CreateBatch(ctx context.Context, media []*models.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)

	// Event-scoped queries
	GetByEvent(ctx context.Context, eventID uuid.UUID, offset, limit int) ([]models.Media, int64, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
	CountByEventAndType(ctx context.Context, eventID uuid.UUID, fileType models.MediaType) (int64, error)

	// GetPhotosByEvent returns every photo record of the event, in stable
	// insertion order. Videos never participate in AI search.
	GetPhotosByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Media, error)
}
