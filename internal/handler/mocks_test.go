package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
)

type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Create(ctx context.Context, bookID int64, bookPage int, note string) (*models.ReadingHistory, error) {
	args := m.Called(ctx, bookID, bookPage, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingHistory), args.Error(1)
}

func (m *MockHistoryService) GetAll(ctx context.Context) ([]models.ReadingHistory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ReadingHistory), args.Error(1)
}

func (m *MockHistoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) Upsert(ctx context.Context, p *models.ReadingPlan) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanService) GetAll(ctx context.Context) ([]models.ReadingPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ReadingPlan), args.Error(1)
}

func (m *MockPlanService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, bookID int64) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

func (m *MockFavoriteService) Remove(ctx context.Context, bookID int64) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context) ([]models.FavoriteList, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FavoriteList), args.Error(1)
}

type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) Create(ctx context.Context, bookID int64, title, content string) (*models.Note, error) {
	args := m.Called(ctx, bookID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteService) Update(ctx context.Context, id int64, title, content string) error {
	args := m.Called(ctx, id, title, content)
	return args.Error(0)
}

func (m *MockNoteService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNoteService) ListForBook(ctx context.Context, bookID int64) (*models.Book, []models.Note, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Book), args.Get(1).([]models.Note), args.Error(2)
}
