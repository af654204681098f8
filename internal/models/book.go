package models

// Book mirrors the Book table. Physical column names follow the original
// schema (ISBN, book_title, pdf_path), so every column is tagged explicitly.
type Book struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	ISBN        string  `json:"ISBN" gorm:"column:ISBN;not null;index:idx_book_isbn"`
	BookTitle   string  `json:"book_title" gorm:"column:book_title;not null"`
	Author      string  `json:"author" gorm:"column:author;not null"`
	Price       int     `json:"price" gorm:"column:price;not null;check:price >= 0"`
	Category    string  `json:"category" gorm:"column:category;not null;index:idx_category"`
	Edition     int     `json:"edition" gorm:"column:edition;not null;check:edition > 0"`
	CurrentPage int     `json:"current_page" gorm:"column:current_page;not null;check:current_page >= 0"`
	PDFPath     *string `json:"-" gorm:"column:pdf_path"`
}

func (Book) TableName() string {
	return "Book"
}
