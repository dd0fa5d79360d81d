package routes

import (
	"github.com/gofiber/fiber/v2"

	"event-gallery/interfaces/api/handlers"
	"event-gallery/interfaces/api/middleware"
)

func SetupMediaRoutes(api fiber.Router, h *handlers.Handlers) {
	media := api.Group("/media")

	media.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), h.Media.DeleteMedia)
}
