package models

// FavoriteList stores at most one row per book (checked at insert time).
// BookTitle is a snapshot of the book title and is not kept in sync with
// later title edits.
type FavoriteList struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID    int64  `json:"book_id" gorm:"column:book_id;not null;index:idx_favorite_list_book_id"`
	BookTitle string `json:"book_title" gorm:"column:book_title;not null"`
}

func (FavoriteList) TableName() string {
	return "FavoriteList"
}
