package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/repository"
)

var ErrHistoryNotFound = errors.New("history entry not found")

type HistoryService interface {
	Create(ctx context.Context, bookID int64, bookPage int, note string) (*models.ReadingHistory, error)
	GetAll(ctx context.Context) ([]models.ReadingHistory, error)
	Delete(ctx context.Context, id int64) error
}

type historyService struct {
	repo repository.HistoryRepository
}

func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

// Create appends an entry with a server-assigned UTC timestamp. The book id
// is trusted as-is; there is no existence check.
func (s *historyService) Create(ctx context.Context, bookID int64, bookPage int, note string) (*models.ReadingHistory, error) {
	h := &models.ReadingHistory{
		TimeStamp: nowUTC(),
		BookID:    bookID,
		BookPage:  bookPage,
		Note:      note,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *historyService) GetAll(ctx context.Context) ([]models.ReadingHistory, error) {
	return s.repo.GetAll(ctx)
}

func (s *historyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHistoryNotFound
		}
		return err
	}
	return nil
}
