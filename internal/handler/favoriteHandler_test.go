package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ChenTim1011/DB-Final-Project/internal/handler"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
)

func setupFavoriteRouter(svc *MockFavoriteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewFavoriteHandler(svc)
	h.RegisterRoutes(r.Group("/"))
	return r
}

func TestFavoriteHandler_AddFavorite(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockFavoriteService)
		svc.On("Add", mock.Anything, int64(1)).Return(nil).Once()
		r := setupFavoriteRouter(svc)

		w := postJSON(r, http.MethodPost, "/add_favorite", gin.H{"book_id": 1})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "已加入收藏！", resp["message"])
		svc.AssertExpectations(t)
	})

	t.Run("AlreadyFavorite", func(t *testing.T) {
		svc := new(MockFavoriteService)
		svc.On("Add", mock.Anything, int64(1)).Return(service.ErrAlreadyFavorite).Once()
		r := setupFavoriteRouter(svc)

		w := postJSON(r, http.MethodPost, "/add_favorite", gin.H{"book_id": 1})

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "此書籍已在收藏清單中！", resp["message"])
	})

	t.Run("BookNotFound", func(t *testing.T) {
		svc := new(MockFavoriteService)
		svc.On("Add", mock.Anything, int64(42)).Return(service.ErrBookNotFound).Once()
		r := setupFavoriteRouter(svc)

		w := postJSON(r, http.MethodPost, "/add_favorite", gin.H{"book_id": 42})

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "書籍ID不存在！", resp["message"])
	})

	t.Run("MissingBookID", func(t *testing.T) {
		svc := new(MockFavoriteService)
		r := setupFavoriteRouter(svc)

		w := postJSON(r, http.MethodPost, "/add_favorite", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Add")
	})
}

func TestFavoriteHandler_DeleteFavorite(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockFavoriteService)
		svc.On("Remove", mock.Anything, int64(3)).Return(nil).Once()
		r := setupFavoriteRouter(svc)

		req, _ := http.NewRequest(http.MethodDelete, "/delete_favorite/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "已從收藏清單移除！", resp["message"])
		svc.AssertExpectations(t)
	})

	t.Run("NotListedStillSucceeds", func(t *testing.T) {
		svc := new(MockFavoriteService)
		svc.On("Remove", mock.Anything, int64(99)).Return(nil).Once()
		r := setupFavoriteRouter(svc)

		req, _ := http.NewRequest(http.MethodDelete, "/delete_favorite/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		svc := new(MockFavoriteService)
		r := setupFavoriteRouter(svc)

		req, _ := http.NewRequest(http.MethodDelete, "/delete_favorite/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Remove")
	})
}
