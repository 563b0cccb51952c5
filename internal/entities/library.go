package entities

import (
	"time"

	"gorm.io/gorm"
)

const (
	MaxAuthorNameLength  = 100
	MaxAuthorEmailLength = 254
	MaxBookTitleLength   = 200

	// DateLayout is the wire and query format of calendar dates.
	DateLayout = "2006-01-02"
)

type Author struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Books []Book `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"books,omitempty"`
}

func (Author) TableName() string {
	return "authors"
}

func (a Author) String() string {
	return a.Name
}

type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	PublishedDate time.Time `gorm:"type:date;index;not null" json:"published_date"`
	AuthorID      uint      `gorm:"index;not null" json:"author_id"`
	Author        Author    `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

func (b Book) String() string {
	return b.Title
}

// BeforeSave keeps only the calendar date so that comparisons on
// published_date never depend on the time of day a client sent.
func (b *Book) BeforeSave(tx *gorm.DB) error {
	b.PublishedDate = TruncateToDate(b.PublishedDate)
	return nil
}

// AfterFind restores the UTC calendar date; drivers may scan the column
// into time.Local.
func (b *Book) AfterFind(tx *gorm.DB) error {
	b.PublishedDate = b.PublishedDate.UTC()
	return nil
}

// TruncateToDate takes the calendar date t shows in its own location and
// returns that date at midnight UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
