package routes

import (
	"github.com/gofiber/fiber/v2"

	"event-gallery/interfaces/api/handlers"
	"event-gallery/interfaces/api/middleware"
)

func SetupExternalVideoRoutes(api fiber.Router, h *handlers.Handlers) {
	videos := api.Group("/external-videos", middleware.Protected(), middleware.AdminOnly())

	videos.Delete("/:id", h.ExternalVideo.RemoveVideo)
	videos.Post("/check", h.ExternalVideo.CheckLinks)
}
