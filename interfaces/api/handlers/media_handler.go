package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"event-gallery/domain/dto"
	"event-gallery/domain/services"
	"event-gallery/pkg/utils"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// UploadMedia bulk-uploads photos and videos to an event
// POST /api/v1/events/:id/media
func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Expected multipart form", err)
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No files provided", nil)
	}

	files := make([]services.UploadFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read upload", err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read upload", err)
		}
		files = append(files, services.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	result, err := h.mediaService.BulkUpload(c.Context(), eventID, files, userCtx.ID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	return utils.CreatedResponse(c, "Upload finished", result)
}

// ListMedia returns an event's media, paginated
// GET /api/v1/events/:id/media
func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	media, total, err := h.mediaService.ListByEvent(c.Context(), eventID, page, limit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list media", err)
	}

	return utils.SuccessResponse(c, "Media retrieved", dto.ToMediaListResponse(media, total, page, limit))
}

// DeleteMedia removes one media record and its stored file
// DELETE /api/v1/media/:id
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	mediaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid media id", err)
	}

	if err := h.mediaService.DeleteMedia(c.Context(), mediaID); err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Media not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete media", err)
	}

	return utils.SuccessResponse(c, "Media deleted", nil)
}
