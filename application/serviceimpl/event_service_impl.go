package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-gallery/domain/models"
	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/infrastructure/storage"
	"event-gallery/pkg/logger"
)

type EventServiceImpl struct {
	eventRepo repositories.EventRepository
	mediaRepo repositories.MediaRepository
	videoRepo repositories.ExternalVideoRepository
	storage   storage.FileStorage
}

func NewEventService(
	eventRepo repositories.EventRepository,
	mediaRepo repositories.MediaRepository,
	videoRepo repositories.ExternalVideoRepository,
	fileStorage storage.FileStorage,
) services.EventService {
	return &EventServiceImpl{
		eventRepo: eventRepo,
		mediaRepo: mediaRepo,
		videoRepo: videoRepo,
		storage:   fileStorage,
	}
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, input *services.CreateEventInput) (*models.Event, error) {
	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	if len(input.CoverImage) > 0 {
		path := fmt.Sprintf("events/%s/cover%s", event.ID, filepath.Ext(input.CoverImageName))
		url, err := s.storage.Upload(ctx, path, input.CoverImage, input.CoverImageType)
		if err != nil {
			logger.StorageError("cover_upload", "Failed to store cover image", err, map[string]interface{}{
				"event_id": event.ID.String(),
			})
		} else {
			event.CoverImageURL = url
			if err := s.eventRepo.Update(ctx, event.ID, event); err != nil {
				return nil, err
			}
		}
	}

	logger.DB("event_created", "Event created", map[string]interface{}{
		"event_id": event.ID.String(),
		"title":    event.Title,
	})
	return event, nil
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) GetEventWithCounts(ctx context.Context, id uuid.UUID) (*services.EventWithCounts, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := s.mediaRepo.CountByEventAndType(ctx, id, models.MediaTypePhoto)
	if err != nil {
		return nil, err
	}
	videos, err := s.mediaRepo.CountByEventAndType(ctx, id, models.MediaTypeVideo)
	if err != nil {
		return nil, err
	}

	return &services.EventWithCounts{
		Event:      *event,
		PhotoCount: photos,
		VideoCount: videos,
	}, nil
}

func (s *EventServiceImpl) ListEvents(ctx context.Context, page, limit int) ([]services.EventWithCounts, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	events, total, err := s.eventRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	listed := make([]services.EventWithCounts, len(events))
	for i, event := range events {
		photos, err := s.mediaRepo.CountByEventAndType(ctx, event.ID, models.MediaTypePhoto)
		if err != nil {
			return nil, 0, err
		}
		videos, err := s.mediaRepo.CountByEventAndType(ctx, event.ID, models.MediaTypeVideo)
		if err != nil {
			return nil, 0, err
		}
		listed[i] = services.EventWithCounts{
			Event:      event,
			PhotoCount: photos,
			VideoCount: videos,
		}
	}
	return listed, total, nil
}

func (s *EventServiceImpl) UpdateEvent(ctx context.Context, id uuid.UUID, input *services.UpdateEventInput) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}

	if err := s.eventRepo.Update(ctx, id, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	media, _, err := s.mediaRepo.GetByEvent(ctx, id, 0, 0)
	if err != nil {
		return err
	}

	// Stored files first; a failed delete leaves an orphan object, not a
	// broken gallery.
	deleteCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	for _, m := range media {
		if err := s.storage.Delete(deleteCtx, storagePathFromURL(m.FileURL)); err != nil {
			logger.StorageError("file_delete", "Failed to delete stored file", err, map[string]interface{}{
				"media_id": m.ID.String(),
			})
		}
	}

	if _, err := s.mediaRepo.DeleteByEvent(ctx, id); err != nil {
		return err
	}
	if _, err := s.videoRepo.DeleteByEvent(ctx, id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.DB("event_deleted", "Event and its media deleted", map[string]interface{}{
		"event_id": id.String(),
		"title":    event.Title,
		"media":    len(media),
	})
	return nil
}
