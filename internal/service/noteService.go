package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/repository"
)

var ErrNoteNotFound = errors.New("note not found")

type NoteService interface {
	Create(ctx context.Context, bookID int64, title, content string) (*models.Note, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
	// ListForBook returns the book (for its display title) together with all
	// of its notes.
	ListForBook(ctx context.Context, bookID int64) (*models.Book, []models.Note, error)
}

type noteService struct {
	repo  repository.NoteRepository
	books repository.BookRepository
}

func NewNoteService(repo repository.NoteRepository, books repository.BookRepository) NoteService {
	return &noteService{repo: repo, books: books}
}

func (s *noteService) Create(ctx context.Context, bookID int64, title, content string) (*models.Note, error) {
	now := nowUTC()
	n := &models.Note{
		BookID:    bookID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *noteService) Update(ctx context.Context, id int64, title, content string) error {
	if err := s.repo.Update(ctx, id, title, content, nowUTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}

func (s *noteService) ListForBook(ctx context.Context, bookID int64) (*models.Book, []models.Note, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBookNotFound
		}
		return nil, nil, err
	}
	notes, err := s.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, nil, err
	}
	return book, notes, nil
}
