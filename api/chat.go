package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pranav-19192/travelease/internal/domain"
)

// ChatService is the support-chat contract: send text, receive text,
// never fail.
type ChatService interface {
	Send(ctx context.Context, message string) string
}

type ChatHandler struct {
	service ChatService
}

type chatRequest struct {
	Text string `json:"text" binding:"required"`
}

func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Register(router *gin.RouterGroup) {
	router.POST("/messages", h.send)
}

func (h *ChatHandler) send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	reply := h.service.Send(c.Request.Context(), req.Text)

	c.JSON(http.StatusOK, domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    domain.ChatSenderAgent,
		Text:      reply,
		Timestamp: time.Now().Format("15:04"),
	})
}
