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

type FavoriteHandler struct {
	svc service.FavoriteService
}

func NewFavoriteHandler(svc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/add_favorite", h.AddFavorite)
	rg.DELETE("/delete_favorite/:book_id", h.DeleteFavorite)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Add(ctx, req.BookID); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyFavorite):
			c.JSON(http.StatusConflict, gin.H{"message": "此書籍已在收藏清單中！"})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "書籍ID不存在！"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "已加入收藏！"})
}

// DeleteFavorite is idempotent: removing a book that is not in the list still
// succeeds.
func (h *FavoriteHandler) DeleteFavorite(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, bookID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已從收藏清單移除！"})
}
