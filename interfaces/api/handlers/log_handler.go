package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"event-gallery/pkg/logger"
	"event-gallery/pkg/utils"
)

// LogHandler exposes application logs to admins.
type LogHandler struct{}

func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

// ReadLogs returns recent log entries, filterable by category, level and text
// GET /api/v1/logs
func (h *LogHandler) ReadLogs(c *fiber.Ctx) error {
	lines, _ := strconv.Atoi(c.Query("lines", "100"))
	if lines < 1 || lines > 1000 {
		lines = 100
	}

	entries, err := logger.ReadLogs(logger.ReadLogsOptions{
		Category: logger.Category(c.Query("category")),
		Level:    logger.Level(c.Query("level")),
		Lines:    lines,
		Search:   c.Query("search"),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read logs", err)
	}

	return utils.SuccessResponse(c, "Logs retrieved", entries)
}

// ListLogFiles lists available log files
// GET /api/v1/logs/files
func (h *LogHandler) ListLogFiles(c *fiber.Ctx) error {
	files, err := logger.ListLogFiles()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list log files", err)
	}

	return utils.SuccessResponse(c, "Log files retrieved", files)
}
