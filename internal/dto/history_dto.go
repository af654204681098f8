package dto

import "github.com/ChenTim1011/DB-Final-Project/internal/models"

// AddHistoryRequest: payload to append a reading history entry. The timestamp
// is assigned by the server, never by the client.
type AddHistoryRequest struct {
	BookID   int64  `json:"book_id" binding:"required"`
	BookPage int    `json:"bookpage" binding:"min=0"`
	Note     string `json:"note"`
}

type HistoryResponse struct {
	ID        int64  `json:"id"`
	TimeStamp string `json:"time_stamp"`
	BookID    int64  `json:"book_id"`
	BookPage  int    `json:"bookpage"`
	Note      string `json:"note"`
}

func FromHistoryModel(h models.ReadingHistory) HistoryResponse {
	return HistoryResponse{
		ID:        h.ID,
		TimeStamp: h.TimeStamp,
		BookID:    h.BookID,
		BookPage:  h.BookPage,
		Note:      h.Note,
	}
}

func FromHistoryModels(list []models.ReadingHistory) []HistoryResponse {
	resp := make([]HistoryResponse, 0, len(list))
	for _, h := range list {
		resp = append(resp, FromHistoryModel(h))
	}
	return resp
}
