package routes

import (
	"github.com/gofiber/fiber/v2"

	"event-gallery/interfaces/api/handlers"
	"event-gallery/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users", middleware.Protected(), middleware.AdminOnly())

	users.Get("/", h.User.ListUsers)
	users.Post("/", h.User.CreateUser)
	users.Put("/:id/role", h.User.UpdateRole)
	users.Delete("/:id", h.User.DeleteUser)
}
