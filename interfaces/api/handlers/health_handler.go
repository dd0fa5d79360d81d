package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"event-gallery/infrastructure/rediscache"
	"event-gallery/infrastructure/vision"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db           *gorm.DB
	redisClient  *rediscache.RedisClient
	visionClient *vision.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *rediscache.RedisClient, visionClient *vision.Client) *HealthHandler {
	return &HealthHandler{
		db:           db,
		redisClient:  redisClient,
		visionClient: visionClient,
	}
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"` // "ok", "error", "unavailable"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// DetailedHealthResponse represents detailed health check response
type DetailedHealthResponse struct {
	Status     string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
}

// Health is the basic liveness probe
// GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}

// DetailedHealth probes the database, redis and the vision gateway config
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	components := map[string]ComponentHealth{
		"database": h.checkDatabase(ctx),
		"redis":    h.checkRedis(ctx),
		"vision":   h.checkVision(),
	}

	status := "healthy"
	for name, component := range components {
		if component.Status == "error" {
			if name == "database" {
				status = "unhealthy"
				break
			}
			status = "degraded"
		}
	}

	code := fiber.StatusOK
	if status == "unhealthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(DetailedHealthResponse{
		Status:     status,
		Timestamp:  time.Now(),
		Components: components,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ComponentHealth {
	started := time.Now()

	sqlDB, err := h.db.DB()
	if err != nil {
		return ComponentHealth{Status: "error", Message: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return ComponentHealth{Status: "error", Message: err.Error()}
	}

	return ComponentHealth{Status: "ok", Latency: time.Since(started).String()}
}

func (h *HealthHandler) checkRedis(ctx context.Context) ComponentHealth {
	if h.redisClient == nil {
		return ComponentHealth{Status: "unavailable", Message: "redis not configured"}
	}

	started := time.Now()
	if err := h.redisClient.Ping(ctx); err != nil {
		return ComponentHealth{Status: "error", Message: err.Error()}
	}
	return ComponentHealth{Status: "ok", Latency: time.Since(started).String()}
}

func (h *HealthHandler) checkVision() ComponentHealth {
	if !h.visionClient.Configured() {
		return ComponentHealth{Status: "unavailable", Message: "vision gateway key not set"}
	}
	return ComponentHealth{Status: "ok"}
}
