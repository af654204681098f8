package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/repository"
)

var ErrAlreadyFavorite = errors.New("book already in favorite list")

type FavoriteService interface {
	Add(ctx context.Context, bookID int64) error
	Remove(ctx context.Context, bookID int64) error
	List(ctx context.Context) ([]models.FavoriteList, error)
}

type favoriteService struct {
	repo  repository.FavoriteRepository
	books repository.BookRepository
}

func NewFavoriteService(repo repository.FavoriteRepository, books repository.BookRepository) FavoriteService {
	return &favoriteService{repo: repo, books: books}
}

// Add snapshots the book's current title into the favorite row. The copy is
// not kept in sync with later title edits.
func (s *favoriteService) Add(ctx context.Context, bookID int64) error {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	exists, err := s.repo.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorite
	}

	return s.repo.Create(ctx, &models.FavoriteList{
		BookID:    bookID,
		BookTitle: book.BookTitle,
	})
}

func (s *favoriteService) Remove(ctx context.Context, bookID int64) error {
	return s.repo.DeleteByBookID(ctx, bookID)
}

func (s *favoriteService) List(ctx context.Context) ([]models.FavoriteList, error) {
	return s.repo.GetAll(ctx)
}
