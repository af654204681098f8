package models

// ReadingPlan keeps at most one row per book. The uniqueness is enforced by a
// check-then-upsert in the service layer, not by a unique constraint.
type ReadingPlan struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID      int64  `json:"book_id" gorm:"column:book_id;not null;index:idx_reading_plan_book_id"`
	ExpiredDate string `json:"expired_date" gorm:"column:expired_date;not null"`
	IsComplete  int    `json:"is_complete" gorm:"column:is_complete;not null;check:is_complete IN (0, 1)"`
}

func (ReadingPlan) TableName() string {
	return "ReadingPlan"
}
