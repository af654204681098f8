package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChenTim1011/DB-Final-Project/internal/dto"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
)

type PlanHandler struct {
	svc service.PlanService
}

func NewPlanHandler(svc service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

func (h *PlanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/add_plan", h.AddPlan)
}

// AddPlan upserts the plan for a book: 201 when a new row was inserted, 200
// when the existing one was updated.
func (h *PlanHandler) AddPlan(c *gin.Context) {
	var req dto.AddPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	plan := req.ToModel()
	created, err := h.svc.Upsert(ctx, &plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "閱讀計劃新增成功！"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "閱讀計劃已更新！"})
}
