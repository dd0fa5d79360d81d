package repositories

import (
	"context"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	Update(ctx context.Context, id uuid.UUID, event *models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns events newest-first by event date
	List(ctx context.Context, offset, limit int) ([]models.Event, int64, error)
}
