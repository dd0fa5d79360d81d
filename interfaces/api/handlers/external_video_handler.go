package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"event-gallery/domain/dto"
	"event-gallery/domain/services"
	"event-gallery/pkg/utils"
)

type ExternalVideoHandler struct {
	videoService services.ExternalVideoService
}

func NewExternalVideoHandler(videoService services.ExternalVideoService) *ExternalVideoHandler {
	return &ExternalVideoHandler{
		videoService: videoService,
	}
}

type addExternalVideoRequest struct {
	PersonName  string `json:"person_name" validate:"required"`
	DriveLink   string `json:"drive_link" validate:"required,url"`
	Description string `json:"description"`
}

// AddVideo registers a Google Drive video link on an event
// POST /api/v1/events/:id/external-videos
func (h *ExternalVideoHandler) AddVideo(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	var req addExternalVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	video, err := h.videoService.AddVideo(c.Context(), &services.AddExternalVideoInput{
		EventID:     eventID,
		PersonName:  req.PersonName,
		DriveLink:   req.DriveLink,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		case errors.Is(err, services.ErrInvalidDriveLink):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Link must be a Google Drive link", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add video", err)
		}
	}

	return utils.CreatedResponse(c, "External video added", dto.ToExternalVideoResponse(video))
}

// ListVideos returns an event's external videos
// GET /api/v1/events/:id/external-videos
func (h *ExternalVideoHandler) ListVideos(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	videos, err := h.videoService.ListByEvent(c.Context(), eventID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list videos", err)
	}

	out := make([]dto.ExternalVideoResponse, len(videos))
	for i := range videos {
		out[i] = dto.ToExternalVideoResponse(&videos[i])
	}
	return utils.SuccessResponse(c, "External videos retrieved", out)
}

// RemoveVideo deletes an external video registration
// DELETE /api/v1/external-videos/:id
func (h *ExternalVideoHandler) RemoveVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid video id", err)
	}

	if err := h.videoService.RemoveVideo(c.Context(), videoID); err != nil {
		if errors.Is(err, services.ErrExternalVideoMissing) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "External video not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove video", err)
	}

	return utils.SuccessResponse(c, "External video removed", nil)
}

// CheckLinks runs the availability check on demand
// POST /api/v1/external-videos/check
func (h *ExternalVideoHandler) CheckLinks(c *fiber.Ctx) error {
	checked, unavailable, err := h.videoService.CheckLinks(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Link check failed", err)
	}

	return utils.SuccessResponse(c, "Link check finished", fiber.Map{
		"checked":     checked,
		"unavailable": unavailable,
	})
}
