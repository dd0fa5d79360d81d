package handlers

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"event-gallery/domain/dto"
	"event-gallery/domain/services"
	"event-gallery/pkg/utils"
)

type EventHandler struct {
	eventService services.EventService
	mediaService services.MediaService
}

func NewEventHandler(eventService services.EventService, mediaService services.MediaService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		mediaService: mediaService,
	}
}

// CreateEvent creates a gallery event from a multipart form
// POST /api/v1/events
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	title := c.FormValue("title")
	if title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Title is required", nil)
	}

	eventDate, err := time.Parse("2006-01-02", c.FormValue("event_date"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "event_date must be YYYY-MM-DD", err)
	}

	input := &services.CreateEventInput{
		Title:       title,
		Description: c.FormValue("description"),
		EventDate:   eventDate,
		CreatedBy:   userCtx.ID,
	}

	if fileHeader, err := c.FormFile("cover_image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read cover image", err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read cover image", err)
		}
		input.CoverImage = data
		input.CoverImageName = fileHeader.Filename
		input.CoverImageType = fileHeader.Header.Get("Content-Type")
	}

	event, err := h.eventService.CreateEvent(c.Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create event", err)
	}

	return utils.CreatedResponse(c, "Event created", dto.ToEventResponse(event, 0, 0))
}

// ListEvents returns events newest-first with media counts
// GET /api/v1/events
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	events, total, err := h.eventService.ListEvents(c.Context(), page, limit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list events", err)
	}

	return utils.SuccessResponse(c, "Events retrieved", dto.ToEventListResponse(events, total, page, limit))
}

// GetEvent returns one event
// GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	event, err := h.eventService.GetEventWithCounts(c.Context(), eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load event", err)
	}

	return utils.SuccessResponse(c, "Event retrieved", dto.ToEventResponse(&event.Event, event.PhotoCount, event.VideoCount))
}

// UpdateEvent updates event fields
// PUT /api/v1/events/:id
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		EventDate   *string `json:"event_date"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	input := &services.UpdateEventInput{
		Title:       body.Title,
		Description: body.Description,
	}
	if body.EventDate != nil {
		parsed, err := time.Parse("2006-01-02", *body.EventDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "event_date must be YYYY-MM-DD", err)
		}
		input.EventDate = &parsed
	}

	event, err := h.eventService.UpdateEvent(c.Context(), eventID, input)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update event", err)
	}

	return utils.SuccessResponse(c, "Event updated", dto.ToEventResponse(event, 0, 0))
}

// DeleteEvent removes an event with its media and external videos
// DELETE /api/v1/events/:id
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	if err := h.eventService.DeleteEvent(c.Context(), eventID); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Event not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete event", err)
	}

	return utils.SuccessResponse(c, "Event deleted", nil)
}
