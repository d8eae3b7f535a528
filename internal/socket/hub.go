package socket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the live tracking subscriptions. Several browsers may watch the
// same order, so subscribers are kept per order id.
type Hub struct {
	subscribers map[string]map[*websocket.Conn]bool
	mu          sync.RWMutex
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*websocket.Conn]bool),
	}
}

// Subscribe registers a connection as a watcher of one order.
func (h *Hub) Subscribe(orderID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[orderID] == nil {
		h.subscribers[orderID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[orderID][conn] = true
	log.Printf("Tracking subscription opened for order %s", orderID)
}

// Unsubscribe removes a connection. The per-order set is dropped once empty.
func (h *Hub) Unsubscribe(orderID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.subscribers[orderID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.subscribers, orderID)
		}
		log.Printf("Tracking subscription closed for order %s", orderID)
	}
}

// SubscriberCount returns how many connections watch an order.
func (h *Hub) SubscriberCount(orderID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[orderID])
}

// Broadcast sends a message to every watcher of an order. A dead connection
// only loses its own update; the read loop will reap it. The exclusive lock
// serializes the writes: gorilla connections support one concurrent writer,
// and status and review mutations can broadcast at the same time.
func (h *Hub) Broadcast(orderID string, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subscribers[orderID]
	if !ok {
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Failed to push update for order %s: %v", orderID, err)
		}
	}
}
