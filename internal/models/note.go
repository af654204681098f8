package models

// Note belongs to one Book and is removed together with it. created_at never
// changes after insert; updated_at is refreshed on every edit.
type Note struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID    int64  `json:"book_id" gorm:"column:book_id;not null;index:idx_note_book_id"`
	Title     string `json:"title" gorm:"column:title;not null"`
	Content   string `json:"content" gorm:"column:content;not null"`
	CreatedAt string `json:"created_at" gorm:"column:created_at;not null"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at;not null"`
}

func (Note) TableName() string {
	return "Note"
}
