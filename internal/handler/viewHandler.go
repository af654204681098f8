package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChenTim1011/DB-Final-Project/internal/dto"
	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
)

// ViewHandler serves the generic read and delete endpoints. The caller names
// a logical table; the name is parsed into an enum once and every branch
// calls a typed service method, so nothing is ever interpolated into SQL.
type ViewHandler struct {
	books     service.BookService
	history   service.HistoryService
	plans     service.PlanService
	favorites service.FavoriteService
}

func NewViewHandler(
	books service.BookService,
	history service.HistoryService,
	plans service.PlanService,
	favorites service.FavoriteService,
) *ViewHandler {
	return &ViewHandler{
		books:     books,
		history:   history,
		plans:     plans,
		favorites: favorites,
	}
}

func (h *ViewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/view_data/:table", h.ViewData)
	rg.DELETE("/delete_data", h.DeleteData)
}

func (h *ViewHandler) ViewData(c *gin.Context) {
	table, err := models.ParseLogicalTable(c.Param("table"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "無效的表格名稱！"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	switch table {
	case models.TableBooks:
		list, err := h.books.GetAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.FromBookModels(list))
	case models.TableHistory:
		list, err := h.history.GetAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.FromHistoryModels(list))
	case models.TablePlan:
		list, err := h.plans.GetAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.FromPlanModels(list))
	case models.TableFavorites:
		list, err := h.favorites.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.FromFavoriteModels(list))
	}
}

func (h *ViewHandler) DeleteData(c *gin.Context) {
	var req dto.DeleteDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := models.ParseDeleteTarget(req.Table)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "無效的表格名稱！"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	switch target {
	case models.DeleteBook:
		if err := h.books.Delete(ctx, req.ID); err != nil {
			if errors.Is(err, service.ErrBookNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "書籍ID不存在！"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case models.DeleteHistory:
		if err := h.history.Delete(ctx, req.ID); err != nil {
			if errors.Is(err, service.ErrHistoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "閱讀歷史ID不存在！"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case models.DeletePlan:
		if err := h.plans.Delete(ctx, req.ID); err != nil {
			if errors.Is(err, service.ErrPlanNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "閱讀計劃ID不存在！"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "資料刪除成功！"})
}
