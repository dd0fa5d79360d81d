package routes

import (
	"github.com/gofiber/fiber/v2"

	"event-gallery/interfaces/api/handlers"
	"event-gallery/interfaces/api/middleware"
	"event-gallery/pkg/config"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, rateCfg *config.RateLimitConfig) {
	auth := api.Group("/auth")

	auth.Post("/register", middleware.AuthRateLimiter(rateCfg), h.Auth.Register)
	auth.Post("/login", middleware.AuthRateLimiter(rateCfg), h.Auth.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), h.Auth.Me)
}
