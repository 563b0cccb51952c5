// Package books provides database operations for books.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	recent, err := repo.PublishedAfter(time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC))
package books

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book. The referenced author must already exist.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit(clause.Associations).Create(book).Error
}

// GetByID retrieves a book with its author.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List retrieves all books with their authors, ordered by ID.
func (r *Repository) List() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("id ASC").Find(&books).Error
	return books, err
}

// Update saves the book's own columns, including a changed AuthorID.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Omit(clause.Associations).Save(book).Error
}

// Delete removes a book. Returns gorm.ErrRecordNotFound when it does not exist.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// CountByAuthor returns how many books reference authorID.
func (r *Repository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// PublishedAfter returns books whose published_date is strictly later than
// the calendar date of after.
func (r *Repository) PublishedAfter(after time.Time) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").
		Where("published_date > ?", entities.TruncateToDate(after)).
		Order("id ASC").
		Find(&books).Error
	return books, err
}
