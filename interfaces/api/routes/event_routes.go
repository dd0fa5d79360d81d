package routes

import (
	"github.com/gofiber/fiber/v2"

	"event-gallery/interfaces/api/handlers"
	"event-gallery/interfaces/api/middleware"
	"event-gallery/pkg/config"
)

func SetupEventRoutes(api fiber.Router, h *handlers.Handlers, rateCfg *config.RateLimitConfig) {
	events := api.Group("/events")

	// Public gallery views
	events.Get("/", h.Event.ListEvents)
	events.Get("/:id", h.Event.GetEvent)
	events.Get("/:id/media", h.Media.ListMedia)
	events.Get("/:id/external-videos", h.ExternalVideo.ListVideos)

	// AI photo search fans out into model calls, so it gets its own limiter.
	// Registered before the :id routes so the literal path wins.
	events.Post("/search-photos", middleware.SearchRateLimiter(rateCfg), h.Search.SearchPhotos)

	// Admin management
	events.Post("/", middleware.Protected(), middleware.AdminOnly(), h.Event.CreateEvent)
	events.Put("/:id", middleware.Protected(), middleware.AdminOnly(), h.Event.UpdateEvent)
	events.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), h.Event.DeleteEvent)
	events.Post("/:id/media", middleware.Protected(), middleware.AdminOnly(), h.Media.UploadMedia)
	events.Post("/:id/external-videos", middleware.Protected(), middleware.AdminOnly(), h.ExternalVideo.AddVideo)
	events.Get("/:id/search-history", middleware.Protected(), middleware.AdminOnly(), h.Search.SearchHistory)
}
