package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialSubscriber opens a client/server websocket pair and registers the
// server side in the hub under orderID.
func dialSubscriber(t *testing.T, hub *Hub, orderID string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Subscribe(orderID, conn)
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	hub := NewHub()
	client := dialSubscriber(t, hub, "order-1")

	// The server-side Subscribe runs in the handler goroutine.
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount("order-1") == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Broadcast("order-1", []byte(`{"type":"order.updated"}`))

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if string(message) != `{"type":"order.updated"}` {
		t.Fatalf("broadcast message = %s", message)
	}
}

// Status and review mutations may broadcast for the same order at the same
// time; the hub must serialize the writes onto each connection.
func TestHub_ConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	client := dialSubscriber(t, hub, "order-3")

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount("order-3") == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	const broadcasters = 4
	const perBroadcaster = 100
	var wg sync.WaitGroup
	for i := 0; i < broadcasters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perBroadcaster; j++ {
				hub.Broadcast("order-3", []byte(`{"type":"order.updated"}`))
			}
		}()
	}

	client.SetReadDeadline(time.Now().Add(5 * time.Second))
	for received := 0; received < broadcasters*perBroadcaster; received++ {
		if _, _, err := client.ReadMessage(); err != nil {
			t.Fatalf("read broadcast %d: %v", received, err)
		}
	}
	wg.Wait()
}

func TestHub_BroadcastToUnknownOrderIsNoop(t *testing.T) {
	hub := NewHub()
	// Must not panic or block.
	hub.Broadcast("missing", []byte("x"))
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()
	client := dialSubscriber(t, hub, "order-2")

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount("order-2") == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// The hub holds the server-side conn; drop every subscriber of the order.
	hub.mu.Lock()
	var conns []*websocket.Conn
	for conn := range hub.subscribers["order-2"] {
		conns = append(conns, conn)
	}
	hub.mu.Unlock()
	for _, conn := range conns {
		hub.Unsubscribe("order-2", conn)
	}

	if got := hub.SubscriberCount("order-2"); got != 0 {
		t.Fatalf("SubscriberCount = %d after unsubscribe, want 0", got)
	}
	_ = client
}
