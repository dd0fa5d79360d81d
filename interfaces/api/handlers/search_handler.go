package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"event-gallery/domain/dto"
	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/pkg/logger"
	"event-gallery/pkg/utils"
)

type SearchHandler struct {
	searchService services.SearchService
	searchLogRepo repositories.SearchLogRepository
}

func NewSearchHandler(searchService services.SearchService, searchLogRepo repositories.SearchLogRepository) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		searchLogRepo: searchLogRepo,
	}
}

// SearchPhotos runs an AI photo search over an event's gallery.
// POST /api/v1/events/search-photos
func (h *SearchHandler) SearchPhotos(c *fiber.Ctx) error {
	var req dto.SearchPhotosRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SearchErrorResponse{Error: "invalid request body"})
	}

	mediaIDs, err := h.searchService.SearchPhotos(c.Context(), &services.PhotoSearchRequest{
		EventID: req.EventID,
		Query:   req.Query,
		Image:   req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventIDRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.SearchErrorResponse{Error: "eventId is required"})
		case errors.Is(err, services.ErrSearchNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.SearchErrorResponse{Error: "photo search is not configured"})
		case errors.Is(err, services.ErrCatalogUnavailable):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.SearchErrorResponse{Error: "failed to load event photos"})
		default:
			logger.SearchError("endpoint", "Unexpected search failure", err, map[string]interface{}{
				"event_id": req.EventID,
			})
			return c.Status(fiber.StatusInternalServerError).JSON(dto.SearchErrorResponse{Error: "search failed"})
		}
	}

	if mediaIDs == nil {
		mediaIDs = []string{}
	}
	return c.JSON(dto.SearchPhotosResponse{MediaIDs: mediaIDs})
}

// SearchHistory lists recent searches of one event for admins.
// GET /api/v1/events/:id/search-history
func (h *SearchHandler) SearchHistory(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event id", err)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	logs, err := h.searchLogRepo.GetByEvent(c.Context(), eventID, limit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load search history", err)
	}

	return utils.SuccessResponse(c, "Search history retrieved", logs)
}
