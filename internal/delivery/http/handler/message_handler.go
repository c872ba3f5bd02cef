package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/message"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUseCase: messageUseCase}
}

// SendMessage handles POST /messages.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req message.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	sent, err := h.messageUseCase.SendMessage(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sent)
}

// GetMessageByID handles GET /messages/:messageId (admin).
func (h *MessageHandler) GetMessageByID(c *gin.Context) {
	messageID, ok := pathInt(c, "messageId")
	if !ok {
		return
	}
	found, err := h.messageUseCase.GetMessageByID(c.Request.Context(), messageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetAllMessages handles GET /messages (admin).
func (h *MessageHandler) GetAllMessages(c *gin.Context) {
	messages, err := h.messageUseCase.GetAllMessages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// GetSentMessages handles GET /messages/sent.
func (h *MessageHandler) GetSentMessages(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	messages, err := h.messageUseCase.GetSentMessages(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// GetReceivedMessages handles GET /messages/received.
func (h *MessageHandler) GetReceivedMessages(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	messages, err := h.messageUseCase.GetReceivedMessages(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkSeen handles POST /messages/:messageId/seen.
func (h *MessageHandler) MarkSeen(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	messageID, ok := pathInt(c, "messageId")
	if !ok {
		return
	}
	updated, err := h.messageUseCase.MarkSeen(c.Request.Context(), uid, messageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMessageByID handles DELETE /messages/:messageId (admin).
func (h *MessageHandler) DeleteMessageByID(c *gin.Context) {
	messageID, ok := pathInt(c, "messageId")
	if !ok {
		return
	}
	if err := h.messageUseCase.DeleteMessageByID(c.Request.Context(), messageID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
