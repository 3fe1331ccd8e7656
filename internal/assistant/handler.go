package assistant

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"anihub/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	Assistant *Assistant
}

func NewHandler(a *Assistant) *Handler {
	return &Handler{Assistant: a}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant/chat", h.chat)
	rg.GET("/assistant/ws", h.ws)
}

type chatReq struct {
	History []models.ChatMessage `json:"history"`
	Message string               `json:"message"`
}

// chat is the stateless request/response surface: the caller keeps the
// transcript and sends it whole each turn.
func (h *Handler) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	reply := h.Assistant.Send(c.Request.Context(), req.History, req.Message)
	c.JSON(http.StatusOK, gin.H{
		"reply": newMessage(models.RoleAssistant, reply),
	})
}

type incomingMessage struct {
	Text string `json:"text"`
}

// ws keeps the transcript server-side for the lifetime of the
// connection. Nothing is persisted; closing the socket ends the session.
func (h *Handler) ws(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	greeting := newMessage(models.RoleAssistant, Greeting)
	history := []models.ChatMessage{greeting}
	if err := conn.WriteJSON(greeting); err != nil {
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming incomingMessage
		if err := json.Unmarshal(payload, &incoming); err != nil {
			// Tolerate bare-text frames.
			incoming.Text = string(payload)
		}
		text := strings.TrimSpace(incoming.Text)
		if text == "" {
			continue
		}

		// The new message is sent separately; history holds prior turns only.
		reply := h.Assistant.Send(c.Request.Context(), history, text)

		userMsg := newMessage(models.RoleUser, text)
		botMsg := newMessage(models.RoleAssistant, reply)
		history = append(history, userMsg, botMsg)

		if err := conn.WriteJSON(botMsg); err != nil {
			return
		}
	}
}

func newMessage(role, text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
}
