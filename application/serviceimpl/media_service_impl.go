package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-gallery/domain/models"
	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/infrastructure/storage"
	ws "event-gallery/infrastructure/websocket"
	"event-gallery/pkg/logger"
)

type MediaServiceImpl struct {
	mediaRepo repositories.MediaRepository
	eventRepo repositories.EventRepository
	storage   storage.FileStorage
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	eventRepo repositories.EventRepository,
	fileStorage storage.FileStorage,
) services.MediaService {
	return &MediaServiceImpl{
		mediaRepo: mediaRepo,
		eventRepo: eventRepo,
		storage:   fileStorage,
	}
}

// mediaTypeForContentType buckets uploads into photos and videos.
func mediaTypeForContentType(contentType string) (models.MediaType, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaTypePhoto, true
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaTypeVideo, true
	default:
		return "", false
	}
}

// storagePathFromURL recovers the storage-zone path from a public CDN URL.
func storagePathFromURL(fileURL string) string {
	if u, err := url.Parse(fileURL); err == nil && u.Path != "" {
		return strings.TrimPrefix(u.Path, "/")
	}
	return fileURL
}

// BulkUpload stores each file and records it on the event. A file that fails
// to store or has an unsupported type lands in Failed; the rest go through.
func (s *MediaServiceImpl) BulkUpload(ctx context.Context, eventID uuid.UUID, files []services.UploadFile, uploadedBy uuid.UUID) (*services.UploadResult, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrEventNotFound
		}
		return nil, err
	}

	result := &services.UploadResult{
		Uploaded: make([]models.Media, 0, len(files)),
		Failed:   make([]string, 0),
	}

	for _, file := range files {
		mediaType, ok := mediaTypeForContentType(file.ContentType)
		if !ok {
			logger.UploadError("unsupported_type", "Skipping unsupported file", nil, map[string]interface{}{
				"file":         file.Name,
				"content_type": file.ContentType,
			})
			result.Failed = append(result.Failed, file.Name)
			continue
		}

		path := fmt.Sprintf("events/%s/%s_%s", eventID, uuid.New().String()[:8], file.Name)
		fileURL, err := s.storage.Upload(ctx, path, file.Data, file.ContentType)
		if err != nil {
			logger.UploadError("store_failed", "Failed to store file", err, map[string]interface{}{
				"file":     file.Name,
				"event_id": eventID.String(),
			})
			result.Failed = append(result.Failed, file.Name)
			continue
		}

		uploader := uploadedBy
		media := &models.Media{
			EventID:    eventID,
			FileURL:    fileURL,
			FileType:   mediaType,
			FileName:   file.Name,
			FileSize:   int64(len(file.Data)),
			UploadedBy: &uploader,
		}
		if err := s.mediaRepo.Create(ctx, media); err != nil {
			logger.UploadError("record_failed", "Stored file but failed to record it", err, map[string]interface{}{
				"file":     file.Name,
				"event_id": eventID.String(),
			})
			result.Failed = append(result.Failed, file.Name)
			continue
		}

		result.Uploaded = append(result.Uploaded, *media)
	}

	logger.Upload("bulk_upload", "Bulk upload finished", map[string]interface{}{
		"event_id": eventID.String(),
		"uploaded": len(result.Uploaded),
		"failed":   len(result.Failed),
	})

	if len(result.Uploaded) > 0 {
		ws.Manager.Broadcast(ws.EventMediaUploaded, eventID.String(), map[string]interface{}{
			"count": len(result.Uploaded),
		})
	}

	return result, nil
}

func (s *MediaServiceImpl) ListByEvent(ctx context.Context, eventID uuid.UUID, page, limit int) ([]models.Media, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return s.mediaRepo.GetByEvent(ctx, eventID, (page-1)*limit, limit)
}

func (s *MediaServiceImpl) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrMediaNotFound
		}
		return err
	}

	if err := s.storage.Delete(ctx, storagePathFromURL(media.FileURL)); err != nil {
		logger.StorageError("file_delete", "Failed to delete stored file", err, map[string]interface{}{
			"media_id": id.String(),
		})
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}

	ws.Manager.Broadcast(ws.EventMediaDeleted, media.EventID.String(), map[string]interface{}{
		"mediaId": id.String(),
	})
	return nil
}
