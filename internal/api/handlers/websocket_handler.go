package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/HoussamELM/PharmaRapide/internal/models"
	"github.com/HoussamELM/PharmaRapide/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// pongWait is how long a silent tracking connection is kept before reaping.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub *socket.Hub
	DB  *mongo.Database
}

// ServeOrderWs opens the live tracking subscription for one order. The
// current snapshot is sent on connect, then every mutation is pushed until
// the page closes the socket.
func (h *WebSocketHandler) ServeOrderWs(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errOrderNotFoundFR})
		return
	}

	var order models.Order
	err = h.DB.Collection("orders").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": errOrderNotFoundFR})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": errOrderLookupFR})
		}
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	defer conn.Close()

	// Snapshot first, so the page renders without a second fetch. It goes out
	// before the hub registration: once subscribed, only Broadcast may write
	// to the connection.
	snapshot, err := json.Marshal(gin.H{"type": "order.snapshot", "order": order})
	if err == nil {
		if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
			return
		}
	}

	orderID := oid.Hex()
	h.Hub.Subscribe(orderID, conn)
	defer h.Hub.Unsubscribe(orderID, conn)

	// A PING from the client extends the deadline; gorilla answers the PONG
	// itself.
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error: %v", err)
			}
			break
		}
	}
}
