package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
)

type PlanRepository interface {
	Create(ctx context.Context, p *models.ReadingPlan) error
	GetByBookID(ctx context.Context, bookID int64) (*models.ReadingPlan, error)
	UpdateByBookID(ctx context.Context, bookID int64, expiredDate string, isComplete int) error
	GetAll(ctx context.Context) ([]models.ReadingPlan, error)
	Delete(ctx context.Context, id int64) error
	DeleteByBookID(ctx context.Context, bookID int64) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, p *models.ReadingPlan) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

func (r *planRepository) GetByBookID(ctx context.Context, bookID int64) (*models.ReadingPlan, error) {
	var p models.ReadingPlan
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepository) UpdateByBookID(ctx context.Context, bookID int64, expiredDate string, isComplete int) error {
	if err := r.db.WithContext(ctx).
		Model(&models.ReadingPlan{}).
		Where("book_id = ?", bookID).
		Updates(map[string]any{
			"expired_date": expiredDate,
			"is_complete":  isComplete,
		}).Error; err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

func (r *planRepository) GetAll(ctx context.Context) ([]models.ReadingPlan, error) {
	var list []models.ReadingPlan
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return list, nil
}

func (r *planRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ReadingPlan{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *planRepository) DeleteByBookID(ctx context.Context, bookID int64) error {
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&models.ReadingPlan{}).Error; err != nil {
		return fmt.Errorf("delete plan by book: %w", err)
	}
	return nil
}
