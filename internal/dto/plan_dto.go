package dto

import "github.com/ChenTim1011/DB-Final-Project/internal/models"

// AddPlanRequest: upsert payload for a reading plan. is_complete may be
// omitted and defaults to false.
type AddPlanRequest struct {
	BookID      int64  `json:"book_id" binding:"required"`
	ExpiredDate string `json:"expired_date" binding:"required"`
	IsComplete  *bool  `json:"is_complete"`
}

func (in AddPlanRequest) ToModel() models.ReadingPlan {
	isComplete := 0
	if in.IsComplete != nil && *in.IsComplete {
		isComplete = 1
	}
	return models.ReadingPlan{
		BookID:      in.BookID,
		ExpiredDate: in.ExpiredDate,
		IsComplete:  isComplete,
	}
}

type PlanResponse struct {
	ID          int64  `json:"id"`
	BookID      int64  `json:"book_id"`
	ExpiredDate string `json:"expired_date"`
	IsComplete  int    `json:"is_complete"`
}

func FromPlanModel(p models.ReadingPlan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		BookID:      p.BookID,
		ExpiredDate: p.ExpiredDate,
		IsComplete:  p.IsComplete,
	}
}

func FromPlanModels(list []models.ReadingPlan) []PlanResponse {
	resp := make([]PlanResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, FromPlanModel(p))
	}
	return resp
}
