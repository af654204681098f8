package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *models.FavoriteList) error
	Exists(ctx context.Context, bookID int64) (bool, error)
	GetAll(ctx context.Context) ([]models.FavoriteList, error)
	DeleteByBookID(ctx context.Context, bookID int64) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, f *models.FavoriteList) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, bookID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteList{}).
		Where("book_id = ?", bookID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) GetAll(ctx context.Context) ([]models.FavoriteList, error) {
	var list []models.FavoriteList
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return list, nil
}

// DeleteByBookID is idempotent: removing an absent favorite is not an error.
func (r *favoriteRepository) DeleteByBookID(ctx context.Context, bookID int64) error {
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&models.FavoriteList{}).Error; err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
