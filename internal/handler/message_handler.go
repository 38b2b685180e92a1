package handler

import (
	"net/http"
	"strconv"

	"github.com/say2me/backend/internal/service"
	"github.com/say2me/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

// PostGlobal handles POST /api/messages (the anonymous wall).
func (h *MessageHandler) PostGlobal(c *gin.Context) {
	h.post(c, nil)
}

// PostToUser handles POST /api/messages/:userId. A malformed or
// unknown user id is a 404, matching the missing-row case.
func (h *MessageHandler) PostToUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "User not found",
			"message": "Invalid user ID",
		})
		return
	}

	h.post(c, &userID)
}

func (h *MessageHandler) post(c *gin.Context, userID *uuid.UUID) {
	var req PostMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Message request parsing failed",
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{
				"field":   "text",
				"message": "text must be a string",
			}},
			"message": "Validation failed",
		})
		return
	}

	message, err := h.messageService.Post(req.Text, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"id":           message.ID,
			"message_text": message.Text,
			"timestamp":    message.Timestamp,
		},
		"message": "Message saved successfully",
	})
}

// ListGlobal handles GET /api/messages?page=N.
func (h *MessageHandler) ListGlobal(c *gin.Context) {
	h.list(c, nil)
}

// ListForUser handles GET /api/messages/:userId?page=N. An id that
// parses but matches no user simply yields no rows, so a malformed id
// gets the same empty page instead of an error.
func (h *MessageHandler) ListForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"data": []gin.H{}})
		return
	}

	h.list(c, &userID)
}

func (h *MessageHandler) list(c *gin.Context, userID *uuid.UUID) {
	messages, err := h.messageService.List(userID, parsePage(c.Query("page")))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	data := make([]gin.H, 0, len(messages))
	for _, msg := range messages {
		data = append(data, gin.H{
			"id":           msg.ID,
			"message_text": msg.Text,
			"timestamp":    msg.Timestamp,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// parsePage defaults absent or non-numeric page params to 1.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
