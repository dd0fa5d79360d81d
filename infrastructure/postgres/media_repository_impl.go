package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-gallery/domain/models"
	"event-gallery/domain/repositories"
)

type MediaRepositoryImpl struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) repositories.MediaRepository {
	return &MediaRepositoryImpl{db: db}
}

func (r *MediaRepositoryImpl) Create(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *MediaRepositoryImpl) CreateBatch(ctx context.Context, media []*models.Media) error {
	if len(media) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(media, 100).Error
}

func (r *MediaRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *MediaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Media{}).Error
}

func (r *MediaRepositoryImpl) DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.Media{})
	return result.RowsAffected, result.Error
}

func (r *MediaRepositoryImpl) GetByEvent(ctx context.Context, eventID uuid.UUID, offset, limit int) ([]models.Media, int64, error) {
	var media []models.Media
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Media{}).Where("event_id = ?", eventID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// limit <= 0 means no limit
	if limit <= 0 {
		limit = -1
	}
	err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&media).Error
	if err != nil {
		return nil, 0, err
	}

	return media, total, nil
}

func (r *MediaRepositoryImpl) CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Media{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *MediaRepositoryImpl) CountByEventAndType(ctx context.Context, eventID uuid.UUID, fileType models.MediaType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Media{}).
		Where("event_id = ? AND file_type = ?", eventID, fileType).
		Count(&count).Error
	return count, err
}

func (r *MediaRepositoryImpl) GetPhotosByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Media, error) {
	var photos []models.Media
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND file_type = ?", eventID, models.MediaTypePhoto).
		Order("created_at ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
