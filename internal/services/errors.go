package services

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Lookup errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")

	// Input errors
	ErrValidation     = errors.New("validation failed")
	ErrDuplicateEmail = errors.New("author with this email already exists")
	ErrUnknownAuthor  = errors.New("referenced author does not exist")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
)

// ValidationError carries per-field messages keyed by the wire field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// fieldError builds a ValidationError for a single field.
func fieldError(field string, err error) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: err.Error()}}
}

// fromOzzo converts ozzo-validation output into a ValidationError.
// Errors that are not field errors are returned unchanged.
func fromOzzo(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for name, fe := range fieldErrs {
		fields[name] = fe.Error()
	}
	return &ValidationError{Fields: fields}
}

// ValidationDetails extracts field messages for API responses.
// Returns nil when err carries no field information.
func ValidationDetails(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return map[string]string{"email": ErrDuplicateEmail.Error()}
	case errors.Is(err, ErrUnknownAuthor):
		return map[string]string{"author": ErrUnknownAuthor.Error()}
	}
	return nil
}

// ToErrorCode converts an error to a machine-readable API code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrUnknownAuthor):
		return "UNKNOWN_AUTHOR"
	case errors.Is(err, ErrInvalidDate):
		return "INVALID_DATE"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrUnknownAuthor),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
