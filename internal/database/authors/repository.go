// Package authors provides database operations for authors.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	prolific, err := repo.WithMultipleBooks()
package authors

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func preloadBooks(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// Create inserts a new author. Books on the struct are ignored.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Omit(clause.Associations).Create(author).Error
}

// GetByID retrieves an author with its books.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Preload("Books", preloadBooks).First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List retrieves all authors with their books, ordered by ID.
func (r *Repository) List() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Preload("Books", preloadBooks).Order("id ASC").Find(&authors).Error
	return authors, err
}

// Update saves the author's own columns.
func (r *Repository) Update(author *entities.Author) error {
	return r.db.Omit(clause.Associations).Save(author).Error
}

// Delete removes an author together with all of its books.
// Returns gorm.ErrRecordNotFound when the author does not exist.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Author{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ExistsByEmail reports whether another author already uses email.
// excludeID skips the author being updated; pass 0 on create.
func (r *Repository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&entities.Author{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Count returns the total number of authors.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}

// WithMultipleBooks returns every author owning more than one book.
// The IN subquery yields each author at most once.
func (r *Repository) WithMultipleBooks() ([]entities.Author, error) {
	prolific := r.db.Model(&entities.Book{}).
		Select("author_id").
		Group("author_id").
		Having("COUNT(*) > ?", 1)

	var authors []entities.Author
	err := r.db.Preload("Books", preloadBooks).
		Where("id IN (?)", prolific).
		Order("id ASC").
		Find(&authors).Error
	return authors, err
}
