package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
)

type NoteRepository interface {
	Create(ctx context.Context, n *models.Note) error
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	ListByBookID(ctx context.Context, bookID int64) ([]models.Note, error)
	Update(ctx context.Context, id int64, title, content, updatedAt string) error
	Delete(ctx context.Context, id int64) error
	DeleteByBookID(ctx context.Context, bookID int64) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, n *models.Note) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	var n models.Note
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) ListByBookID(ctx context.Context, bookID int64) ([]models.Note, error) {
	var list []models.Note
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return list, nil
}

// Update rewrites title and content and refreshes updated_at. created_at is
// left untouched.
func (r *noteRepository) Update(ctx context.Context, id int64, title, content, updatedAt string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("update note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Note{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepository) DeleteByBookID(ctx context.Context, bookID int64) error {
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&models.Note{}).Error; err != nil {
		return fmt.Errorf("delete notes by book: %w", err)
	}
	return nil
}
