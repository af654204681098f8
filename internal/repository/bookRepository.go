package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
)

type BookRepository interface {
	Create(ctx context.Context, b *models.Book) error
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetAll(ctx context.Context) ([]models.Book, error)
	TitleExists(ctx context.Context, title string) (bool, error)
	TitlesWithBase(ctx context.Context, base string) ([]string, error)
	SearchByCategory(ctx context.Context, category string) ([]models.Book, error)
	SearchByTitle(ctx context.Context, name string) ([]models.Book, error)
	UpdateCurrentPage(ctx context.Context, bookID int64, page int) error
	Delete(ctx context.Context, id int64) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return list, nil
}

// TitleExists reports whether any book carries exactly this title.
// sqlite's = is case-sensitive, which is the intended behavior.
func (r *bookRepository) TitleExists(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("book_title = ?", title).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// TitlesWithBase returns every title that is either exactly base or starts
// with base followed by an opening parenthesis, e.g. "Foo", "Foo(1)", "Foo(2)".
func (r *bookRepository) TitlesWithBase(ctx context.Context, base string) ([]string, error) {
	var titles []string
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("book_title = ? OR book_title LIKE ?", base, base+"(%").
		Pluck("book_title", &titles).Error; err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	return titles, nil
}

func (r *bookRepository) SearchByCategory(ctx context.Context, category string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search by category: %w", err)
	}
	return list, nil
}

// SearchByTitle matches a substring anywhere in the title. sqlite LIKE is
// case-insensitive for ASCII.
func (r *bookRepository) SearchByTitle(ctx context.Context, name string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Where("book_title LIKE ?", "%"+name+"%").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search by name: %w", err)
	}
	return list, nil
}

// UpdateCurrentPage has deliberately no existence check; updating an absent
// id is a no-op.
func (r *bookRepository) UpdateCurrentPage(ctx context.Context, bookID int64, page int) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", bookID).
		Update("current_page", page).Error; err != nil {
		return fmt.Errorf("update current page: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
