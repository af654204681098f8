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
	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
)

func setupViewRouter(books *MockBookService, history *MockHistoryService, plans *MockPlanService, favorites *MockFavoriteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewViewHandler(books, history, plans, favorites)
	h.RegisterRoutes(r.Group("/"))
	return r
}

func TestViewHandler_ViewData(t *testing.T) {
	books := new(MockBookService)
	history := new(MockHistoryService)
	plans := new(MockPlanService)
	favorites := new(MockFavoriteService)
	r := setupViewRouter(books, history, plans, favorites)

	t.Run("Books", func(t *testing.T) {
		books.On("GetAll", mock.Anything).Return([]models.Book{
			{ID: 1, ISBN: "123", BookTitle: "一本書", Author: "作者", Price: 200, Category: "散文", Edition: 2, CurrentPage: 10},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/view_data/books", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Len(t, resp, 1)
		assert.Equal(t, "一本書", resp[0]["book_title"])
		assert.Equal(t, float64(2), resp[0]["edition"])
	})

	t.Run("History", func(t *testing.T) {
		history.On("GetAll", mock.Anything).Return([]models.ReadingHistory{
			{ID: 7, TimeStamp: "2026-08-28T10:00:00Z", BookID: 1, BookPage: 42, Note: "進度"},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/view_data/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Len(t, resp, 1)
		assert.Equal(t, float64(42), resp[0]["bookpage"])
		assert.Equal(t, "2026-08-28T10:00:00Z", resp[0]["time_stamp"])
	})

	t.Run("Plan", func(t *testing.T) {
		plans.On("GetAll", mock.Anything).Return([]models.ReadingPlan{
			{ID: 3, BookID: 1, ExpiredDate: "2026-12-31", IsComplete: 0},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/view_data/plan", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Len(t, resp, 1)
		assert.Equal(t, float64(0), resp[0]["is_complete"])
	})

	t.Run("Favorites", func(t *testing.T) {
		favorites.On("List", mock.Anything).Return([]models.FavoriteList{
			{ID: 1, BookID: 2, BookTitle: "收藏的書"},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/view_data/favorites", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Len(t, resp, 1)
		assert.Equal(t, "收藏的書", resp[0]["book_title"])
	})

	t.Run("UnknownTable", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/view_data/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "無效的表格名稱！", resp["message"])
	})
}

func TestViewHandler_DeleteData(t *testing.T) {
	books := new(MockBookService)
	history := new(MockHistoryService)
	plans := new(MockPlanService)
	favorites := new(MockFavoriteService)
	r := setupViewRouter(books, history, plans, favorites)

	t.Run("DeleteBook", func(t *testing.T) {
		books.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

		w := postJSON(r, http.MethodDelete, "/delete_data", gin.H{"table": "書籍", "id": 5})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "資料刪除成功！", resp["message"])
	})

	t.Run("BookNotFound", func(t *testing.T) {
		books.On("Delete", mock.Anything, int64(99)).Return(service.ErrBookNotFound).Once()

		w := postJSON(r, http.MethodDelete, "/delete_data", gin.H{"table": "書籍", "id": 99})

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "書籍ID不存在！", resp["message"])
	})

	t.Run("HistoryNotFound", func(t *testing.T) {
		history.On("Delete", mock.Anything, int64(4)).Return(service.ErrHistoryNotFound).Once()

		w := postJSON(r, http.MethodDelete, "/delete_data", gin.H{"table": "閱讀歷史", "id": 4})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeletePlan", func(t *testing.T) {
		plans.On("Delete", mock.Anything, int64(2)).Return(nil).Once()

		w := postJSON(r, http.MethodDelete, "/delete_data", gin.H{"table": "閱讀計劃", "id": 2})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnknownTable", func(t *testing.T) {
		w := postJSON(r, http.MethodDelete, "/delete_data", gin.H{"table": "users", "id": 1})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "無效的表格名稱！", resp["message"])
	})
}
