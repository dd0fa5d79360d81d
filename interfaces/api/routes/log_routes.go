package routes

import (
	"github.com/gofiber/fiber/v2"

	"event-gallery/interfaces/api/handlers"
	"event-gallery/interfaces/api/middleware"
)

func SetupLogRoutes(api fiber.Router, h *handlers.Handlers) {
	logs := api.Group("/logs", middleware.Protected(), middleware.AdminOnly())

	logs.Get("/", h.Log.ReadLogs)
	logs.Get("/files", h.Log.ListLogFiles)
}
