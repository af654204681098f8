package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
)

type HistoryRepository interface {
	Create(ctx context.Context, h *models.ReadingHistory) error
	GetAll(ctx context.Context) ([]models.ReadingHistory, error)
	Delete(ctx context.Context, id int64) error
	DeleteByBookID(ctx context.Context, bookID int64) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, h *models.ReadingHistory) error {
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("create history: %w", err)
	}
	return nil
}

func (r *historyRepository) GetAll(ctx context.Context) ([]models.ReadingHistory, error) {
	var list []models.ReadingHistory
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return list, nil
}

func (r *historyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ReadingHistory{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete history: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *historyRepository) DeleteByBookID(ctx context.Context, bookID int64) error {
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&models.ReadingHistory{}).Error; err != nil {
		return fmt.Errorf("delete history by book: %w", err)
	}
	return nil
}
