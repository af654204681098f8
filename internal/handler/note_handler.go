package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChenTim1011/DB-Final-Project/internal/dto"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
)

type NoteHandler struct {
	svc service.NoteService
}

func NewNoteHandler(svc service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notes/:book_id", h.NotesPage)
	rg.POST("/add_note", h.AddNote)
	rg.PUT("/update_note", h.UpdateNote)
	rg.DELETE("/delete_note/:note_id", h.DeleteNote)
}

// NotesPage renders the notes-browsing page for one book.
func (h *NoteHandler) NotesPage(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, notes, err := h.svc.ListForBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "書籍ID不存在！"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "notes.html", gin.H{
		"BookID":    book.ID,
		"BookTitle": book.BookTitle,
		"Notes":     dto.FromNoteModels(notes),
	})
}

func (h *NoteHandler) AddNote(c *gin.Context) {
	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	note, err := h.svc.Create(ctx, req.BookID, req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "筆記新增成功！",
		"note":    dto.FromNoteModel(*note),
	})
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Update(ctx, req.NoteID, req.Title, req.Content); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "筆記ID不存在！"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "筆記更新成功！"})
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID, err := strconv.ParseInt(c.Param("note_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, noteID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "筆記ID不存在！"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "筆記刪除成功！"})
}
