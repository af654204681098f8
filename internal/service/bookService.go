package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/repository"
)

var ErrBookNotFound = errors.New("book not found")

type BookService interface {
	CheckDuplicate(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, b *models.Book) error
	GetAll(ctx context.Context) ([]models.Book, error)
	SearchByCategory(ctx context.Context, category string) ([]models.Book, error)
	SearchByName(ctx context.Context, name string) ([]models.Book, error)
	UpdateCurrentPage(ctx context.Context, bookID int64, page int) error
	Delete(ctx context.Context, id int64) error
}

type bookService struct {
	repo      repository.BookRepository
	notes     repository.NoteRepository
	history   repository.HistoryRepository
	plans     repository.PlanRepository
	favorites repository.FavoriteRepository

	// when false, deleting a book orphans its history/plan/favorite rows
	cascadeDelete bool
}

func NewBookService(
	repo repository.BookRepository,
	notes repository.NoteRepository,
	history repository.HistoryRepository,
	plans repository.PlanRepository,
	favorites repository.FavoriteRepository,
	cascadeDelete bool,
) BookService {
	return &bookService{
		repo:          repo,
		notes:         notes,
		history:       history,
		plans:         plans,
		favorites:     favorites,
		cascadeDelete: cascadeDelete,
	}
}

func (s *bookService) CheckDuplicate(ctx context.Context, title string) (bool, error) {
	return s.repo.TitleExists(ctx, title)
}

// Create inserts the book. A duplicate title is never rejected; instead the
// new row gets the next free "(n)" suffix on the base title. Two concurrent
// creates with the same title can still race to the same suffix - there is
// no locking here on purpose.
func (s *bookService) Create(ctx context.Context, b *models.Book) error {
	exists, err := s.repo.TitleExists(ctx, b.BookTitle)
	if err != nil {
		return err
	}
	if exists {
		title, err := s.nextAvailableTitle(ctx, b.BookTitle)
		if err != nil {
			return err
		}
		b.BookTitle = title
	}
	return s.repo.Create(ctx, b)
}

var titleCounterRe = regexp.MustCompile(`^(.*)\((\d+)\)$`)

// splitTitleCounter splits "Foo(2)" into ("Foo", 2, true). Titles without a
// trailing parenthesized integer come back unchanged with ok=false.
func splitTitleCounter(title string) (base string, n int, ok bool) {
	m := titleCounterRe.FindStringSubmatch(title)
	if m == nil {
		return title, 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return title, 0, false
	}
	return m[1], n, true
}

// nextAvailableTitle strips any existing "(n)" suffix off the requested title
// and appends the next counter after the highest one already stored for that
// base. The bare base title counts as 0, so "Foo" -> "Foo(1)" -> "Foo(2)".
func (s *bookService) nextAvailableTitle(ctx context.Context, requested string) (string, error) {
	base, _, _ := splitTitleCounter(requested)
	titles, err := s.repo.TitlesWithBase(ctx, base)
	if err != nil {
		return "", err
	}
	max := 0
	for _, t := range titles {
		if t == base {
			continue
		}
		if b, n, ok := splitTitleCounter(t); ok && b == base && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s(%d)", base, max+1), nil
}

func (s *bookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) SearchByCategory(ctx context.Context, category string) ([]models.Book, error) {
	return s.repo.SearchByCategory(ctx, category)
}

func (s *bookService) SearchByName(ctx context.Context, name string) ([]models.Book, error) {
	return s.repo.SearchByTitle(ctx, name)
}

func (s *bookService) UpdateCurrentPage(ctx context.Context, bookID int64, page int) error {
	return s.repo.UpdateCurrentPage(ctx, bookID, page)
}

// Delete removes the book and its notes. History, plan and favorite rows are
// removed as well only when cascade deletion is configured.
func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	if err := s.notes.DeleteByBookID(ctx, id); err != nil {
		return err
	}
	if !s.cascadeDelete {
		return nil
	}
	if err := s.history.DeleteByBookID(ctx, id); err != nil {
		return err
	}
	if err := s.plans.DeleteByBookID(ctx, id); err != nil {
		return err
	}
	return s.favorites.DeleteByBookID(ctx, id)
}
