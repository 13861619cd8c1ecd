package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/types"
	"gorm.io/gorm"
)

type LinkRequest struct {
	URL         string `form:"url" json:"url" binding:"required,url"`
	Description string `form:"description" json:"description"`
}

type DeleteLinkRequest struct {
	LinkID uint `form:"link_id" json:"link_id" binding:"required"`
}

type LinkHandler struct {
	conn *gorm.DB
}

func NewLinkHandler(conn *gorm.DB) *LinkHandler {
	return &LinkHandler{conn: conn}
}

func (h *LinkHandler) ListLinks(ctx *gin.Context) {
	var links []models.Link

	if err := h.conn.WithContext(ctx.Request.Context()).Order("description").Find(&links).Error; err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.LinkResponse, 0, len(links))

	for _, link := range links {
		response = append(response, types.LinkResponse{
			ID:          link.ID,
			URL:         link.URL,
			Description: link.Description,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"links": response})
}

func (h *LinkHandler) CreateLink(ctx *gin.Context) {
	var body LinkRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link := models.Link{URL: body.URL, Description: body.Description}

	if err := h.conn.WithContext(ctx.Request.Context()).Create(&link).Error; err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"link": types.LinkResponse{
		ID:          link.ID,
		URL:         link.URL,
		Description: link.Description,
	}})
}

func (h *LinkHandler) DeleteLink(ctx *gin.Context) {
	var body DeleteLinkRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.conn.WithContext(ctx.Request.Context()).Delete(&models.Link{}, body.LinkID)

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
