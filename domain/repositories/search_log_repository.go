package repositories

import (
	"context"

	"github.com/google/uuid"

	"event-gallery/domain/models"
)

type SearchLogRepository interface {
	Create(ctx context.Context, log *models.SearchLog) error
	GetByEvent(ctx context.Context, eventID uuid.UUID, limit int) ([]models.SearchLog, error)
	GetRecent(ctx context.Context, limit int) ([]models.SearchLog, error)
}
