package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// StoreUpdateData tells a store owner that a trade happened on their store.
type StoreUpdateData struct {
	StoreID uuid.UUID `json:"storeId"`
	ItemID  uuid.UUID `json:"itemId"`
	Action  string    `json:"action"`
	Money   uint      `json:"money"`
	Items   int       `json:"items"`
}

type Hub struct {
	connections map[uuid.UUID]*websocket.Conn
	mu          sync.RWMutex
	log         *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*websocket.Conn),
		log:         log,
	}
}

func (h *Hub) Register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.connections[userID]; exists {
		old.Close()
	}
	h.connections[userID] = conn
	h.log.Info("ws connected", "user_id", userID, "connections", len(h.connections))
}

// Unregister drops conn if it is still the user's current connection. A
// connection replaced by a newer one was already closed by Register.
func (h *Hub) Unregister(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, exists := h.connections[userID]; exists && current == conn {
		current.Close()
		delete(h.connections, userID)
		h.log.Info("ws disconnected", "user_id", userID, "connections", len(h.connections))
	}
}

func (h *Hub) SendToUser(userID uuid.UUID, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	// The write lock also serializes writers, gorilla connections allow only one.
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, exists := h.connections[userID]
	if !exists {
		return nil
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Hub) SendStoreUpdate(ownerID uuid.UUID, update StoreUpdateData) error {
	return h.SendToUser(ownerID, Message{Type: "store_update", Data: update})
}

// PingAll sends a ping to every connection and drops the ones that fail.
// It returns the number of dropped connections.
func (h *Hub) PingAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	dropped := 0
	deadline := time.Now().Add(writeTimeout)
	for userID, conn := range h.connections {
		if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
			conn.Close()
			delete(h.connections, userID)
			dropped++
			h.log.Info("ws ping failed", "user_id", userID, "error", err)
		}
	}
	return dropped
}

func (h *Hub) IsConnected(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
