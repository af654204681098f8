package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChenTim1011/DB-Final-Project/internal/dto"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/check_book", h.CheckBook)
	rg.POST("/add_book", h.AddBook)
	rg.PUT("/update_page", h.UpdatePage)
	rg.GET("/search_by_category", h.SearchByCategory)
	rg.GET("/search_by_name", h.SearchByName)
}

// CheckBook reports whether a book with exactly this title already exists.
func (h *BookHandler) CheckBook(c *gin.Context) {
	var req dto.CheckBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.svc.CheckDuplicate(ctx, req.BookTitle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if existing {
		c.JSON(http.StatusOK, dto.CheckBookResponse{
			Existing: true,
			Message:  "已有同名書籍，是否仍要新增？",
		})
		return
	}
	c.JSON(http.StatusOK, dto.CheckBookResponse{Existing: false})
}

// AddBook inserts the book, renaming it with a "(n)" suffix when the title is
// already taken.
func (h *BookHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book := req.ToModel()
	if err := h.svc.Create(ctx, &book); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// book.BookTitle now carries the possibly disambiguated title
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("書籍 %s 新增成功！", book.BookTitle)})
}

func (h *BookHandler) UpdatePage(c *gin.Context) {
	var req dto.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.UpdateCurrentPage(ctx, req.BookID, req.CurrentPage); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "目前頁數更新成功！"})
}

func (h *BookHandler) SearchByCategory(c *gin.Context) {
	category := c.Query("category")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.SearchByCategory(ctx, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModels(list))
}

func (h *BookHandler) SearchByName(c *gin.Context) {
	name := c.Query("name")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.SearchByName(ctx, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModels(list))
}
