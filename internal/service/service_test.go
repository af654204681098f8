package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ChenTim1011/DB-Final-Project/internal/database"
	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/repository"
)

// testDB opens a throwaway sqlite file with the full schema migrated.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type testRepos struct {
	books     repository.BookRepository
	history   repository.HistoryRepository
	plans     repository.PlanRepository
	notes     repository.NoteRepository
	favorites repository.FavoriteRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		books:     repository.NewBookRepository(db),
		history:   repository.NewHistoryRepository(db),
		plans:     repository.NewPlanRepository(db),
		notes:     repository.NewNoteRepository(db),
		favorites: repository.NewFavoriteRepository(db),
	}
}

func sampleBook(title string) *models.Book {
	return &models.Book{
		ISBN:        "978-957-123-456-7",
		BookTitle:   title,
		Author:      "某作者",
		Price:       350,
		Category:    "小說",
		Edition:     1,
		CurrentPage: 0,
	}
}
