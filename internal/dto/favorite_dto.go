package dto

import "github.com/ChenTim1011/DB-Final-Project/internal/models"

// AddFavoriteRequest: payload to add a book to the favorite list
type AddFavoriteRequest struct {
	BookID int64 `json:"book_id" binding:"required"`
}

// FavoriteResponse carries the title snapshot taken when the favorite was
// created, which may differ from the book's current title.
type FavoriteResponse struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"book_id"`
	BookTitle string `json:"book_title"`
}

func FromFavoriteModel(f models.FavoriteList) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		BookID:    f.BookID,
		BookTitle: f.BookTitle,
	}
}

func FromFavoriteModels(list []models.FavoriteList) []FavoriteResponse {
	resp := make([]FavoriteResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, FromFavoriteModel(f))
	}
	return resp
}
