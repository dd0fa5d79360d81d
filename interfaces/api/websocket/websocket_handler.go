package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	websocketManager "event-gallery/infrastructure/websocket"
	"event-gallery/pkg/logger"
	"event-gallery/pkg/utils"
)

type WebSocketHandler struct{}

func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket serves one gallery connection. Viewers can scope
// themselves to a single event via the event query param.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	var userID uuid.UUID

	if userContext := c.Locals("user"); userContext != nil {
		if user, ok := userContext.(*utils.UserContext); ok {
			userID = user.ID
		}
	}

	// Anonymous gallery viewers get a throwaway id
	if userID == uuid.Nil {
		userID = uuid.New()
	}

	eventID := c.Query("event", "")

	websocketManager.Manager.RegisterClient(c, userID, eventID)
	defer websocketManager.Manager.UnregisterClient(c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.WebSocketError("read_message", "WebSocket read error", err, map[string]interface{}{"user_id": userID.String()})
			break
		}

		websocketManager.HandleWebSocketMessage(c, messageType, message)
	}
}
