package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ChenTim1011/DB-Final-Project/internal/models"
	"github.com/ChenTim1011/DB-Final-Project/internal/repository"
)

var ErrPlanNotFound = errors.New("reading plan not found")

type PlanService interface {
	// Upsert reports created=true when a new plan row was inserted and false
	// when an existing plan for the same book was updated instead.
	Upsert(ctx context.Context, p *models.ReadingPlan) (created bool, err error)
	GetAll(ctx context.Context) ([]models.ReadingPlan, error)
	Delete(ctx context.Context, id int64) error
}

type planService struct {
	repo repository.PlanRepository
}

func NewPlanService(repo repository.PlanRepository) PlanService {
	return &planService{repo: repo}
}

// Upsert keeps at most one plan per book: check-then-insert, so concurrent
// upserts for the same book can still race. Accepted, as with duplicate
// titles.
func (s *planService) Upsert(ctx context.Context, p *models.ReadingPlan) (bool, error) {
	existing, err := s.repo.GetByBookID(ctx, p.BookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.repo.Create(ctx, p); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.repo.UpdateByBookID(ctx, existing.BookID, p.ExpiredDate, p.IsComplete); err != nil {
		return false, err
	}
	return false, nil
}

func (s *planService) GetAll(ctx context.Context) ([]models.ReadingPlan, error) {
	return s.repo.GetAll(ctx)
}

func (s *planService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}
