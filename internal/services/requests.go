package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// AuthorInput is the full set of writable author fields.
// Used for create and full update. The binding tags are checked by gin at
// the HTTP boundary; Validate is the authoritative check.
type AuthorInput struct {
	Name  string `json:"name" form:"name" binding:"required,max=100"`
	Email string `json:"email" form:"email" binding:"required,email,max=254"`
}

// Validate checks field presence and length.
func (in AuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(1, entities.MaxAuthorNameLength)),
		validation.Field(&in.Email, validation.Required, validation.Length(1, entities.MaxAuthorEmailLength), is.EmailFormat),
	)
}

func (in AuthorInput) normalize() AuthorInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	return in
}

// AuthorPatch carries optional author fields for partial updates.
// Nil fields keep their stored value.
type AuthorPatch struct {
	Name  *string `json:"name" form:"name"`
	Email *string `json:"email" form:"email"`
}

func (p AuthorPatch) apply(a *entities.Author) AuthorInput {
	in := AuthorInput{Name: a.Name, Email: a.Email}
	if p.Name != nil {
		in.Name = *p.Name
	}
	if p.Email != nil {
		in.Email = *p.Email
	}
	return in
}

// AuthorRef is an author id in a request body. JSON accepts either a number
// or a string of digits.
type AuthorRef uint

func (r *AuthorRef) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return fmt.Errorf("author must be an id, got %s", data)
	}
	*r = AuthorRef(id)
	return nil
}

// BookInput is the full set of writable book fields.
// PublishedDate is a YYYY-MM-DD calendar date; Author is the author id.
type BookInput struct {
	Title         string    `json:"title" form:"title" binding:"required,max=200"`
	PublishedDate string    `json:"published_date" form:"published_date" binding:"required,datetime=2006-01-02"`
	Author        AuthorRef `json:"author" form:"author" binding:"required,gt=0"`
}

// Validate checks field presence, length and the date format.
func (in BookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(1, entities.MaxBookTitleLength)),
		validation.Field(&in.PublishedDate, validation.Required, validation.Date(entities.DateLayout).Error(ErrInvalidDate.Error())),
		validation.Field(&in.Author, validation.Required),
	)
}

func (in BookInput) normalize() BookInput {
	in.Title = strings.TrimSpace(in.Title)
	in.PublishedDate = strings.TrimSpace(in.PublishedDate)
	return in
}

// BookPatch carries optional book fields for partial updates.
type BookPatch struct {
	Title         *string    `json:"title" form:"title"`
	PublishedDate *string    `json:"published_date" form:"published_date"`
	Author        *AuthorRef `json:"author" form:"author"`
}

func (p BookPatch) apply(b *entities.Book) BookInput {
	in := BookInput{
		Title:         b.Title,
		PublishedDate: b.PublishedDate.Format(entities.DateLayout),
		Author:        AuthorRef(b.AuthorID),
	}
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.PublishedDate != nil {
		in.PublishedDate = *p.PublishedDate
	}
	if p.Author != nil {
		in.Author = *p.Author
	}
	return in
}

// ParseDate parses a strict YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(entities.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
