package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-gallery/domain/models"
	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/infrastructure/googledrive"
	"event-gallery/pkg/logger"
)

const linkCheckBatchLimit = 50

type ExternalVideoServiceImpl struct {
	videoRepo repositories.ExternalVideoRepository
	eventRepo repositories.EventRepository
	drive     *googledrive.DriveClient
}

func NewExternalVideoService(
	videoRepo repositories.ExternalVideoRepository,
	eventRepo repositories.EventRepository,
	drive *googledrive.DriveClient,
) services.ExternalVideoService {
	return &ExternalVideoServiceImpl{
		videoRepo: videoRepo,
		eventRepo: eventRepo,
		drive:     drive,
	}
}

func (s *ExternalVideoServiceImpl) AddVideo(ctx context.Context, input *services.AddExternalVideoInput) (*models.ExternalVideo, error) {
	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrEventNotFound
		}
		return nil, err
	}

	fileID, err := googledrive.ExtractFileID(input.DriveLink)
	if err != nil {
		return nil, services.ErrInvalidDriveLink
	}
	normalized, err := googledrive.NormalizeLink(input.DriveLink)
	if err != nil {
		return nil, services.ErrInvalidDriveLink
	}

	video := &models.ExternalVideo{
		EventID:     input.EventID,
		PersonName:  input.PersonName,
		DriveLink:   normalized,
		DriveFileID: fileID,
		Description: input.Description,
		Available:   true,
	}

	// Best effort: pull the file name into the description when none given.
	if input.Description == "" && s.drive.Configured() {
		if meta, err := s.drive.GetFileMetadata(ctx, fileID); err == nil {
			video.Description = meta.Name
		}
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}

	logger.Drive("video_added", "External video registered", map[string]interface{}{
		"video_id": video.ID.String(),
		"event_id": input.EventID.String(),
		"file_id":  fileID,
	})
	return video, nil
}

func (s *ExternalVideoServiceImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.ExternalVideo, error) {
	return s.videoRepo.GetByEvent(ctx, eventID)
}

func (s *ExternalVideoServiceImpl) RemoveVideo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.videoRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrExternalVideoMissing
		}
		return err
	}
	return s.videoRepo.Delete(ctx, id)
}

// CheckLinks re-validates the stalest registered links. Runs from the
// scheduler; a Drive client without credentials makes it a no-op.
func (s *ExternalVideoServiceImpl) CheckLinks(ctx context.Context) (int, int, error) {
	if !s.drive.Configured() {
		return 0, 0, nil
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	videos, err := s.videoRepo.GetCheckedBefore(ctx, cutoff, linkCheckBatchLimit)
	if err != nil {
		return 0, 0, err
	}

	unavailable := 0
	for _, video := range videos {
		available, err := s.drive.CheckLink(ctx, video.DriveFileID)
		if err != nil {
			logger.DriveError("link_check", "Failed to check drive link", err, map[string]interface{}{
				"video_id": video.ID.String(),
			})
			continue
		}
		if !available {
			unavailable++
		}
		if err := s.videoRepo.UpdateAvailability(ctx, video.ID, available, time.Now()); err != nil {
			logger.DriveError("availability_update", "Failed to record link availability", err, map[string]interface{}{
				"video_id": video.ID.String(),
			})
		}
	}

	logger.Drive("link_check", "Drive link check finished", map[string]interface{}{
		"checked":     len(videos),
		"unavailable": unavailable,
	})
	return len(videos), unavailable, nil
}
