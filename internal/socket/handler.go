package socket

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The session token gates the upgrade; origin is not restricted.
		return true
	},
}

// TokenValidator checks a session token. Wiring it in as a function keeps
// this package free of a dependency on the service layer.
type TokenValidator func(ctx context.Context, token string) error

// Handler handles WebSocket connections
type Handler struct {
	hub      *Hub
	validate TokenValidator
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, validate TokenValidator) *Handler {
	return &Handler{hub: hub, validate: validate}
}

// HandleWebSocket handles WebSocket upgrade requests. The token comes from a
// query parameter because the browser WebSocket API cannot set custom
// headers; the Authorization header is accepted as a fallback.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		log.Println("[WebSocket] No token provided")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	if err := h.validate(c.Request.Context(), tokenString); err != nil {
		log.Printf("[WebSocket] Token rejected: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WebSocket] Upgrade failed: %v", err)
		return
	}

	client := &Client{
		ID:   uuid.NewString(),
		Hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 64),
	}

	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}
