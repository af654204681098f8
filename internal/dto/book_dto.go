package dto

import "github.com/ChenTim1011/DB-Final-Project/internal/models"

// CheckBookRequest: payload for the duplicate-title check
type CheckBookRequest struct {
	BookTitle string `json:"book_title" binding:"required"`
}

// CheckBookResponse reports whether a book with the same title exists.
type CheckBookResponse struct {
	Existing bool   `json:"existing"`
	Message  string `json:"message,omitempty"`
}

// AddBookRequest: payload to create a book
type AddBookRequest struct {
	ISBN        string `json:"ISBN" binding:"required"`
	BookTitle   string `json:"book_title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Price       int    `json:"price" binding:"min=0"`
	Category    string `json:"category" binding:"required"`
	Edition     int    `json:"edition" binding:"required,gt=0"`
	CurrentPage int    `json:"current_page" binding:"min=0"`
}

func (in AddBookRequest) ToModel() models.Book {
	return models.Book{
		ISBN:        in.ISBN,
		BookTitle:   in.BookTitle,
		Author:      in.Author,
		Price:       in.Price,
		Category:    in.Category,
		Edition:     in.Edition,
		CurrentPage: in.CurrentPage,
	}
}

// UpdatePageRequest: payload to move the bookmark of a book
type UpdatePageRequest struct {
	BookID      int64 `json:"book_id" binding:"required"`
	CurrentPage int   `json:"current_page" binding:"min=0"`
}

// BookResponse is the wire shape of a book row. pdf_path is internal and
// deliberately not exposed here.
type BookResponse struct {
	ID          int64  `json:"id"`
	ISBN        string `json:"ISBN"`
	BookTitle   string `json:"book_title"`
	Author      string `json:"author"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Edition     int    `json:"edition"`
	CurrentPage int    `json:"current_page"`
}

func FromBookModel(b models.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		ISBN:        b.ISBN,
		BookTitle:   b.BookTitle,
		Author:      b.Author,
		Price:       b.Price,
		Category:    b.Category,
		Edition:     b.Edition,
		CurrentPage: b.CurrentPage,
	}
}

func FromBookModels(list []models.Book) []BookResponse {
	resp := make([]BookResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, FromBookModel(b))
	}
	return resp
}
