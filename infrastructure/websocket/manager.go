package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"event-gallery/pkg/logger"
)

// Event types pushed to gallery viewers.
const (
	EventMediaUploaded   = "media_uploaded"
	EventMediaDeleted    = "media_deleted"
	EventSearchCompleted = "search_completed"
)

// Message is the envelope sent to connected clients.
type Message struct {
	Type      string      `json:"type"`
	EventID   string      `json:"eventId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type client struct {
	conn    *websocket.Conn
	userID  uuid.UUID
	eventID string
}

// ClientManager tracks live gallery connections, optionally scoped to one event.
type ClientManager struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
}

// Manager is the shared connection registry.
var Manager = &ClientManager{
	clients: make(map[*websocket.Conn]*client),
}

// RegisterClient adds a connection, scoped to eventID when non-empty.
func (m *ClientManager) RegisterClient(conn *websocket.Conn, userID uuid.UUID, eventID string) {
	m.mu.Lock()
	m.clients[conn] = &client{conn: conn, userID: userID, eventID: eventID}
	total := len(m.clients)
	m.mu.Unlock()

	logger.WebSocket("client_registered", "Client connected", map[string]interface{}{
		"user_id":  userID.String(),
		"event_id": eventID,
		"total":    total,
	})
}

// UnregisterClient removes a connection.
func (m *ClientManager) UnregisterClient(conn *websocket.Conn) {
	m.mu.Lock()
	delete(m.clients, conn)
	total := len(m.clients)
	m.mu.Unlock()

	logger.WebSocket("client_unregistered", "Client disconnected", map[string]interface{}{
		"total": total,
	})
}

// Broadcast sends a message to every client watching eventID. Clients with no
// event scope receive everything.
func (m *ClientManager) Broadcast(msgType, eventID string, data interface{}) {
	msg := Message{
		Type:      msgType,
		EventID:   eventID,
		Data:      data,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		logger.WebSocketError("broadcast_marshal", "Failed to encode broadcast", err, nil)
		return
	}

	m.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(m.clients))
	for conn, cl := range m.clients {
		if cl.eventID == "" || cl.eventID == eventID {
			targets = append(targets, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range targets {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.WebSocketError("broadcast_write", "Failed to deliver broadcast", err, nil)
		}
	}
}

// ClientCount returns the number of connected clients.
func (m *ClientManager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// HandleWebSocketMessage replies to client pings and ignores everything else.
func HandleWebSocketMessage(conn *websocket.Conn, messageType int, message []byte) {
	if messageType != websocket.TextMessage {
		return
	}

	var incoming struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(message, &incoming); err != nil {
		return
	}

	if incoming.Type == "ping" {
		pong, _ := json.Marshal(Message{Type: "pong", Timestamp: time.Now()})
		if err := conn.WriteMessage(websocket.TextMessage, pong); err != nil {
			logger.WebSocketError("pong_write", "Failed to answer ping", err, nil)
		}
	}
}
