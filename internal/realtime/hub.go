package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event is the wire shape of a realtime notification. Toggle and reset
// events let a user's other open clients refresh their optimistic mirrors.
type Event struct {
	Type    string   `json:"type"`
	TaskID  string   `json:"taskId,omitempty"`
	TaskIDs []string `json:"taskIds,omitempty"`
	GoalID  string   `json:"goalId,omitempty"`
	UserID  string   `json:"userId"`
}

const (
	EventTaskCreated = "task_created"
	EventTaskUpdated = "task_updated"
	EventTaskDeleted = "task_deleted"
	EventTaskToggled = "task_toggled"
	EventTasksReset  = "tasks_reset"
	EventGoalUpdated = "goal_updated"
)

// Hub maintains active user connections and broadcasts events to them.
type Hub struct {
	mu              sync.RWMutex
	userIDToClients map[string]map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			userIDToClients: make(map[string]map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client under a user ID.
func (h *Hub) Register(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.userIDToClients[userID]; !ok {
		h.userIDToClients[userID] = make(map[Client]struct{})
	}
	h.userIDToClients[userID][client] = struct{}{}
}

// Unregister removes a client; if user has no more clients, cleans up map.
func (h *Hub) Unregister(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.userIDToClients[userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.userIDToClients, userID)
		}
	}
}

// Broadcast sends a message to all clients of a user.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients := h.userIDToClients[userID]
	for c := range clients {
		// a failed write is cleaned up by the ws handler on its side
		_ = c.Send(message)
	}
}

// BroadcastEvent marshals and broadcasts an event to the event's user.
// Marshal failures are swallowed; realtime fan-out is best effort.
func (h *Hub) BroadcastEvent(evt Event) {
	bytes, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(evt.UserID, bytes)
}
