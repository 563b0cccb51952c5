// Package representations renders authors and books into their API shape.
//
// A book is rendered with exactly five keys:
//
//	{"title", "published_date", "author", "author_name", "since_creation_in_days"}
//
// since_creation_in_days is derived at render time from the presenter's clock,
// so the same stored book renders differently on different days.
package representations

import (
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const secondsPerDay = 24 * 60 * 60

// BookRepresentation is the wire shape of a book.
type BookRepresentation struct {
	Title               string `json:"title"`
	PublishedDate       string `json:"published_date"`
	Author              uint   `json:"author"`
	AuthorName          string `json:"author_name"`
	SinceCreationInDays int    `json:"since_creation_in_days"`
}

// AuthorRepresentation is the wire shape of an author with nested books.
type AuthorRepresentation struct {
	ID    uint                 `json:"id"`
	Name  string               `json:"name"`
	Email string               `json:"email"`
	Books []BookRepresentation `json:"books"`
}

// Presenter builds representations relative to a clock.
type Presenter struct {
	Now func() time.Time
}

// NewPresenter returns a Presenter using the wall clock.
func NewPresenter() *Presenter {
	return &Presenter{Now: time.Now}
}

// Book renders a single book. The book's Author must be loaded for
// author_name to be filled.
func (p *Presenter) Book(b *entities.Book) BookRepresentation {
	return p.book(b, b.Author.Name)
}

// Books renders a list of books, never returning nil.
func (p *Presenter) Books(books []entities.Book) []BookRepresentation {
	out := make([]BookRepresentation, 0, len(books))
	for i := range books {
		out = append(out, p.Book(&books[i]))
	}
	return out
}

// Author renders an author with their books. Books nested under an author
// take author_name from the author itself.
func (p *Presenter) Author(a *entities.Author) AuthorRepresentation {
	books := make([]BookRepresentation, 0, len(a.Books))
	for i := range a.Books {
		books = append(books, p.book(&a.Books[i], a.Name))
	}
	return AuthorRepresentation{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Books: books,
	}
}

// Authors renders a list of authors, never returning nil.
func (p *Presenter) Authors(authors []entities.Author) []AuthorRepresentation {
	out := make([]AuthorRepresentation, 0, len(authors))
	for i := range authors {
		out = append(out, p.Author(&authors[i]))
	}
	return out
}

func (p *Presenter) book(b *entities.Book, authorName string) BookRepresentation {
	return BookRepresentation{
		Title:               b.Title,
		PublishedDate:       b.PublishedDate.Format(entities.DateLayout),
		Author:              b.AuthorID,
		AuthorName:          authorName,
		SinceCreationInDays: DaysBetween(b.PublishedDate, p.Now()),
	}
}

// DaysBetween returns the number of calendar days from the date of 'from' to
// the date of 'to', each taken in its own location. Negative when 'to' is
// earlier. Exact beyond the range of time.Duration.
func DaysBetween(from, to time.Time) int {
	start := entities.TruncateToDate(from)
	end := entities.TruncateToDate(to)
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}
