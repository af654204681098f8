package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChenTim1011/DB-Final-Project/internal/dto"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
)

type HistoryHandler struct {
	svc service.HistoryService
}

func NewHistoryHandler(svc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func (h *HistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/add_history", h.AddHistory)
}

func (h *HistoryHandler) AddHistory(c *gin.Context) {
	var req dto.AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.svc.Create(ctx, req.BookID, req.BookPage, req.Note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "閱讀歷史新增成功！"})
}
