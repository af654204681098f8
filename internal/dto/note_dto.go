package dto

import "github.com/ChenTim1011/DB-Final-Project/internal/models"

// AddNoteRequest: payload to create a note for a book
type AddNoteRequest struct {
	BookID  int64  `json:"book_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// UpdateNoteRequest rewrites title and content; created_at never changes.
type UpdateNoteRequest struct {
	NoteID  int64  `json:"note_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type NoteResponse struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"book_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func FromNoteModel(n models.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		BookID:    n.BookID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func FromNoteModels(list []models.Note) []NoteResponse {
	resp := make([]NoteResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, FromNoteModel(n))
	}
	return resp
}
