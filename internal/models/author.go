package models

// Author holds author metadata. Book.author stores the author name as plain
// text, so there is no enforced relation between the two tables.
type Author struct {
	AuthorID     int64   `json:"author_id" gorm:"column:author_id;primaryKey;autoIncrement"`
	AuthorName   string  `json:"author_name" gorm:"column:author_name;not null"`
	Introduction *string `json:"introduction,omitempty" gorm:"column:introduction"`
	Nationality  *string `json:"nationality,omitempty" gorm:"column:nationality"`
	BirthYear    *int    `json:"birth_year,omitempty" gorm:"column:birth_year;check:birth_year > 0"`
}

func (Author) TableName() string {
	return "Author"
}
