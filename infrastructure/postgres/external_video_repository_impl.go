package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-gallery/domain/models"
	"event-gallery/domain/repositories"
)

type ExternalVideoRepositoryImpl struct {
	db *gorm.DB
}

func NewExternalVideoRepository(db *gorm.DB) repositories.ExternalVideoRepository {
	return &ExternalVideoRepositoryImpl{db: db}
}

func (r *ExternalVideoRepositoryImpl) Create(ctx context.Context, video *models.ExternalVideo) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *ExternalVideoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.ExternalVideo, error) {
	var video models.ExternalVideo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *ExternalVideoRepositoryImpl) GetByEvent(ctx context.Context, eventID uuid.UUID) ([]models.ExternalVideo, error) {
	var videos []models.ExternalVideo
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&videos).Error
	return videos, err
}

func (r *ExternalVideoRepositoryImpl) Update(ctx context.Context, id uuid.UUID, video *models.ExternalVideo) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(video).Error
}

func (r *ExternalVideoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ExternalVideo{}).Error
}

func (r *ExternalVideoRepositoryImpl) DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.ExternalVideo{})
	return result.RowsAffected, result.Error
}

func (r *ExternalVideoRepositoryImpl) GetCheckedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.ExternalVideo, error) {
	var videos []models.ExternalVideo
	err := r.db.WithContext(ctx).
		Where("last_checked_at IS NULL OR last_checked_at < ?", cutoff).
		Order("last_checked_at ASC NULLS FIRST").
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (r *ExternalVideoRepositoryImpl) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool, checkedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&models.ExternalVideo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"available":       available,
			"last_checked_at": checkedAt,
		}).Error
}
