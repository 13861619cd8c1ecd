package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/types"
	"gorm.io/gorm"
)

type MessageRequest struct {
	Title   string `form:"title" json:"title" binding:"required"`
	Content string `form:"content" json:"content"`
}

type DeleteMessageRequest struct {
	MessageID uint `form:"message_id" json:"message_id" binding:"required"`
}

type MessageHandler struct {
	conn *gorm.DB
}

func NewMessageHandler(conn *gorm.DB) *MessageHandler {
	return &MessageHandler{conn: conn}
}

func (h *MessageHandler) ListMessages(ctx *gin.Context) {
	var messages []models.Message

	if err := h.conn.WithContext(ctx.Request.Context()).Order("id").Find(&messages).Error; err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.MessageResponse, 0, len(messages))

	for _, message := range messages {
		response = append(response, messageResponse(message))
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": response})
}

func (h *MessageHandler) GetMessage(ctx *gin.Context) {
	messageID, ok := parseID(ctx, "messageId")
	if !ok {
		return
	}

	var message models.Message

	if err := h.conn.WithContext(ctx.Request.Context()).First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, models.ErrNotFound)
		} else {
			respondError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": messageResponse(message)})
}

func (h *MessageHandler) CreateMessage(ctx *gin.Context) {
	var body MessageRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	message := models.Message{Title: body.Title, Content: body.Content}

	if err := h.conn.WithContext(ctx.Request.Context()).Create(&message).Error; err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": messageResponse(message)})
}

func (h *MessageHandler) UpdateMessage(ctx *gin.Context) {
	messageID, ok := parseID(ctx, "messageId")
	if !ok {
		return
	}

	var body MessageRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.conn.WithContext(ctx.Request.Context()).Model(&models.Message{}).Where("id = ?", messageID).
		Updates(map[string]interface{}{"title": body.Title, "content": body.Content})

	if result.Error != nil {
		respondError(ctx, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		respondError(ctx, models.ErrNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": types.MessageResponse{ID: messageID, Title: body.Title, Content: body.Content}})
}

func (h *MessageHandler) DeleteMessage(ctx *gin.Context) {
	var body DeleteMessageRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.conn.WithContext(ctx.Request.Context()).Delete(&models.Message{}, body.MessageID)

	if result.Error != nil {
		respondError(ctx, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		respondError(ctx, models.ErrNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func messageResponse(message models.Message) types.MessageResponse {
	return types.MessageResponse{
		ID:      message.ID,
		Title:   message.Title,
		Content: message.Content,
	}
}
