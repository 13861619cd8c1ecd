package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/types"
	"gorm.io/gorm"
)

type NoteRequest struct {
	Subject string `form:"subject" json:"subject"`
	Title   string `form:"title" json:"title" binding:"required"`
	Content string `form:"content" json:"content"`
}

type DeleteNoteRequest struct {
	NoteID uint `form:"note_id" json:"note_id" binding:"required"`
}

type NoteHandler struct {
	conn *gorm.DB
}

func NewNoteHandler(conn *gorm.DB) *NoteHandler {
	return &NoteHandler{conn: conn}
}

// ListNotes returns all notes plus the distinct subjects used to group them.
func (h *NoteHandler) ListNotes(ctx *gin.Context) {
	var subjects []string

	if err := h.conn.WithContext(ctx.Request.Context()).Model(&models.Note{}).
		Distinct("subject").Order("subject").Pluck("subject", &subjects).Error; err != nil {
		respondError(ctx, err)
		return
	}

	var notes []models.Note

	if err := h.conn.WithContext(ctx.Request.Context()).Order("id").Find(&notes).Error; err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.NoteResponse, 0, len(notes))

	for _, note := range notes {
		response = append(response, noteResponse(note))
	}

	ctx.JSON(http.StatusOK, gin.H{"subjects": subjects, "notes": response})
}

func (h *NoteHandler) GetNote(ctx *gin.Context) {
	noteID, ok := parseID(ctx, "noteId")
	if !ok {
		return
	}

	var note models.Note

	if err := h.conn.WithContext(ctx.Request.Context()).First(&note, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, models.ErrNotFound)
		} else {
			respondError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"note": noteResponse(note)})
}

func (h *NoteHandler) CreateNote(ctx *gin.Context) {
	var body NoteRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note := models.Note{Subject: body.Subject, Title: body.Title, Content: body.Content}

	if err := h.conn.WithContext(ctx.Request.Context()).Create(&note).Error; err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"note": noteResponse(note)})
}

func (h *NoteHandler) UpdateNote(ctx *gin.Context) {
	noteID, ok := parseID(ctx, "noteId")
	if !ok {
		return
	}

	var body NoteRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.conn.WithContext(ctx.Request.Context()).Model(&models.Note{}).Where("id = ?", noteID).
		Updates(map[string]interface{}{"subject": body.Subject, "title": body.Title, "content": body.Content})

	if result.Error != nil {
		respondError(ctx, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		respondError(ctx, models.ErrNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"note": types.NoteResponse{ID: noteID, Subject: body.Subject, Title: body.Title, Content: body.Content}})
}

func (h *NoteHandler) DeleteNote(ctx *gin.Context) {
	var body DeleteNoteRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.conn.WithContext(ctx.Request.Context()).Delete(&models.Note{}, body.NoteID)

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

func noteResponse(note models.Note) types.NoteResponse {
	return types.NoteResponse{
		ID:      note.ID,
		Subject: note.Subject,
		Title:   note.Title,
		Content: note.Content,
	}
}
