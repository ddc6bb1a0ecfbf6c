package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient wraps one websocket session. The connection allows a single
// concurrent writer, so every outbound frame (broadcasts and
// keepalives) goes through write.
type WSClient struct {
	userID uint
	conn   *websocket.Conn

	wmu sync.Mutex
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{userID: userID, conn: conn}
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Ping sends a keepalive control frame.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// RealtimeHub fans reminder change events out to every open session of
// a user. Events are delivered in the order the mutations happened.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*WSClient]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.userID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// ReminderEvent mirrors the row-change feed shape: one INSERT, UPDATE
// or DELETE notification per mutation.
type ReminderEvent struct {
	Event    string `json:"event"` // "INSERT" | "UPDATE" | "DELETE"
	Reminder any    `json:"reminder"`
}

func (h *RealtimeHub) BroadcastReminder(userID uint, event string, reminder any) {
	msg, _ := json.Marshal(ReminderEvent{Event: event, Reminder: reminder})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.write(websocket.TextMessage, msg)
	}
}
