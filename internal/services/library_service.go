package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// LibraryService holds the business rules for authors and books:
// input validation, unique author emails, author references on books,
// and the two reporting queries.
type LibraryService struct {
	authors AuthorStore
	books   BookStore
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(authors AuthorStore, books BookStore) *LibraryService {
	return &LibraryService{
		authors: authors,
		books:   books,
	}
}

// ListAuthors returns every author with their books.
func (s *LibraryService) ListAuthors() ([]entities.Author, error) {
	authors, err := s.authors.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

// GetAuthor returns a single author with their books.
func (s *LibraryService) GetAuthor(id uint) (*entities.Author, error) {
	author, err := s.authors.GetByID(id)
	if err != nil {
		return nil, authorLookupError(err)
	}
	return author, nil
}

// CreateAuthor validates the input and stores a new author.
func (s *LibraryService) CreateAuthor(in AuthorInput) (*entities.Author, error) {
	in = in.normalize()
	if err := s.checkAuthor(in, 0); err != nil {
		return nil, err
	}

	author := &entities.Author{Name: in.Name, Email: in.Email}
	if err := s.authors.Create(author); err != nil {
		return nil, authorWriteError(err)
	}

	log.Info().Uint("author_id", author.ID).Str("email", author.Email).Msg("Author created")
	return s.GetAuthor(author.ID)
}

// UpdateAuthor replaces every writable field of an existing author.
func (s *LibraryService) UpdateAuthor(id uint, in AuthorInput) (*entities.Author, error) {
	author, err := s.GetAuthor(id)
	if err != nil {
		return nil, err
	}
	return s.saveAuthor(author, in.normalize())
}

// PatchAuthor updates only the fields present in the patch.
func (s *LibraryService) PatchAuthor(id uint, patch AuthorPatch) (*entities.Author, error) {
	author, err := s.GetAuthor(id)
	if err != nil {
		return nil, err
	}
	return s.saveAuthor(author, patch.apply(author).normalize())
}

func (s *LibraryService) saveAuthor(author *entities.Author, in AuthorInput) (*entities.Author, error) {
	if err := s.checkAuthor(in, author.ID); err != nil {
		return nil, err
	}

	author.Name = in.Name
	author.Email = in.Email
	if err := s.authors.Update(author); err != nil {
		return nil, authorWriteError(err)
	}

	log.Info().Uint("author_id", author.ID).Msg("Author updated")
	return s.GetAuthor(author.ID)
}

// DeleteAuthor removes an author together with all of their books.
func (s *LibraryService) DeleteAuthor(id uint) error {
	if err := s.authors.Delete(id); err != nil {
		return authorLookupError(err)
	}
	log.Info().Uint("author_id", id).Msg("Author deleted with their books")
	return nil
}

// AuthorsWithMultipleBooks returns authors owning more than one book.
func (s *LibraryService) AuthorsWithMultipleBooks() ([]entities.Author, error) {
	authors, err := s.authors.WithMultipleBooks()
	if err != nil {
		return nil, fmt.Errorf("failed to query authors with multiple books: %w", err)
	}
	return authors, nil
}

func (s *LibraryService) checkAuthor(in AuthorInput, selfID uint) error {
	if err := fromOzzo(in.Validate()); err != nil {
		return err
	}
	taken, err := s.authors.ExistsByEmail(in.Email, selfID)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return ErrDuplicateEmail
	}
	return nil
}

// ListBooks returns every book with its author loaded.
func (s *LibraryService) ListBooks() ([]entities.Book, error) {
	books, err := s.books.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// GetBook returns a single book with its author loaded.
func (s *LibraryService) GetBook(id uint) (*entities.Book, error) {
	book, err := s.books.GetByID(id)
	if err != nil {
		return nil, bookLookupError(err)
	}
	return book, nil
}

// CreateBook validates the input, checks the author exists and stores a new book.
func (s *LibraryService) CreateBook(in BookInput) (*entities.Book, error) {
	book := &entities.Book{}
	if err := s.applyBook(book, in.normalize()); err != nil {
		return nil, err
	}
	if err := s.books.Create(book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	log.Info().Uint("book_id", book.ID).Uint("author_id", book.AuthorID).Msg("Book created")
	return s.GetBook(book.ID)
}

// UpdateBook replaces every writable field of an existing book.
func (s *LibraryService) UpdateBook(id uint, in BookInput) (*entities.Book, error) {
	book, err := s.GetBook(id)
	if err != nil {
		return nil, err
	}
	return s.saveBook(book, in.normalize())
}

// PatchBook updates only the fields present in the patch.
func (s *LibraryService) PatchBook(id uint, patch BookPatch) (*entities.Book, error) {
	book, err := s.GetBook(id)
	if err != nil {
		return nil, err
	}
	return s.saveBook(book, patch.apply(book).normalize())
}

func (s *LibraryService) saveBook(book *entities.Book, in BookInput) (*entities.Book, error) {
	if err := s.applyBook(book, in); err != nil {
		return nil, err
	}
	if err := s.books.Update(book); err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", book.ID, err)
	}

	log.Info().Uint("book_id", book.ID).Msg("Book updated")
	return s.GetBook(book.ID)
}

// DeleteBook removes a single book.
func (s *LibraryService) DeleteBook(id uint) error {
	if err := s.books.Delete(id); err != nil {
		return bookLookupError(err)
	}
	log.Info().Uint("book_id", id).Msg("Book deleted")
	return nil
}

// BooksPublishedAfter returns books published strictly after the given
// YYYY-MM-DD date. A book published on that date is not included.
func (s *LibraryService) BooksPublishedAfter(date string) ([]entities.Book, error) {
	after, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	books, err := s.books.PublishedAfter(after)
	if err != nil {
		return nil, fmt.Errorf("failed to query books published after %s: %w", date, err)
	}
	return books, nil
}

// applyBook validates in and copies it onto book. The referenced author
// must exist.
func (s *LibraryService) applyBook(book *entities.Book, in BookInput) error {
	if err := fromOzzo(in.Validate()); err != nil {
		return err
	}
	published, err := ParseDate(in.PublishedDate)
	if err != nil {
		return fieldError("published_date", err)
	}

	author, err := s.authors.GetByID(uint(in.Author))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUnknownAuthor
	}
	if err != nil {
		return fmt.Errorf("failed to load author %d: %w", in.Author, err)
	}

	book.Title = in.Title
	book.PublishedDate = published
	book.AuthorID = author.ID
	book.Author = entities.Author{}
	return nil
}

func authorLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAuthorNotFound
	}
	return fmt.Errorf("author lookup failed: %w", err)
}

func bookLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookNotFound
	}
	return fmt.Errorf("book lookup failed: %w", err)
}

// authorWriteError maps a unique-index violation that slipped past
// ExistsByEmail (concurrent writers) onto ErrDuplicateEmail.
func authorWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return fmt.Errorf("failed to save author: %w", err)
}
