package services

import (
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// AuthorReader provides read-only access to authors and their books.
type AuthorReader interface {
	GetByID(id uint) (*entities.Author, error)
	List() ([]entities.Author, error)
	WithMultipleBooks() ([]entities.Author, error)
}

// AuthorStore persists authors. Delete removes the author's books as well.
type AuthorStore interface {
	AuthorReader
	Create(author *entities.Author) error
	Update(author *entities.Author) error
	Delete(id uint) error
	ExistsByEmail(email string, excludeID uint) (bool, error)
}

// BookReader provides read-only access to books.
type BookReader interface {
	GetByID(id uint) (*entities.Book, error)
	List() ([]entities.Book, error)
	PublishedAfter(after time.Time) ([]entities.Book, error)
}

// BookStore persists books.
type BookStore interface {
	BookReader
	Create(book *entities.Book) error
	Update(book *entities.Book) error
	Delete(id uint) error
}
