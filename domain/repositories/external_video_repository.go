package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

type ExternalVideoRepository interface {
	Create(ctx context.Context, video *models.ExternalVideo) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ExternalVideo, error)
	GetByEvent(ctx context.Context, eventID uuid.UUID) ([]models.ExternalVideo, error)
	Update(ctx context.Context, id uuid.UUID, video *models.ExternalVideo) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)

	// Link check support
	GetCheckedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.ExternalVideo, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool, checkedAt time.Time) error
}
