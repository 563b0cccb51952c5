package http

import (
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/services"
)

// Each controller depends only on the operations it calls.
// *services.LibraryService satisfies all of them.

// AuthorService provides author CRUD.
type AuthorService interface {
	ListAuthors() ([]entities.Author, error)
	GetAuthor(id uint) (*entities.Author, error)
	CreateAuthor(in services.AuthorInput) (*entities.Author, error)
	UpdateAuthor(id uint, in services.AuthorInput) (*entities.Author, error)
	PatchAuthor(id uint, patch services.AuthorPatch) (*entities.Author, error)
	DeleteAuthor(id uint) error
}

// BookService provides book CRUD.
type BookService interface {
	ListBooks() ([]entities.Book, error)
	GetBook(id uint) (*entities.Book, error)
	CreateBook(in services.BookInput) (*entities.Book, error)
	UpdateBook(id uint, in services.BookInput) (*entities.Book, error)
	PatchBook(id uint, patch services.BookPatch) (*entities.Book, error)
	DeleteBook(id uint) error
}

// QueryService provides the reporting queries.
type QueryService interface {
	BooksPublishedAfter(date string) ([]entities.Book, error)
	AuthorsWithMultipleBooks() ([]entities.Author, error)
}

// LibraryService is the full set of operations the router wires.
type LibraryService interface {
	AuthorService
	BookService
	QueryService
}

// Pinger reports storage connectivity for the health check.
type Pinger interface {
	Ping() error
}
