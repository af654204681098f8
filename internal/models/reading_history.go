package models

// ReadingHistory is append-only: rows are inserted and deleted, never updated.
// TimeStamp is a server-assigned UTC timestamp stored as TEXT.
type ReadingHistory struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TimeStamp string `json:"time_stamp" gorm:"column:time_stamp;not null"`
	BookID    int64  `json:"book_id" gorm:"column:book_id;not null;index:idx_reading_history_book_id"`
	BookPage  int    `json:"bookpage" gorm:"column:bookpage;not null;check:bookpage >= 0"`
	Note      string `json:"note" gorm:"column:note;not null"`
}

func (ReadingHistory) TableName() string {
	return "ReadingHistory"
}
