package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrAuthorNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", ErrBookNotFound), http.StatusNotFound},
		{ErrDuplicateEmail, http.StatusBadRequest},
		{ErrUnknownAuthor, http.StatusBadRequest},
		{ErrInvalidDate, http.StatusBadRequest},
		{&ValidationError{Fields: map[string]string{"name": "cannot be blank"}}, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.err))
		})
	}
}

func TestToErrorCode(t *testing.T) {
	assert.Equal(t, "AUTHOR_NOT_FOUND", ToErrorCode(ErrAuthorNotFound))
	assert.Equal(t, "BOOK_NOT_FOUND", ToErrorCode(ErrBookNotFound))
	assert.Equal(t, "DUPLICATE_EMAIL", ToErrorCode(ErrDuplicateEmail))
	assert.Equal(t, "VALIDATION_ERROR", ToErrorCode(&ValidationError{}))
	assert.Equal(t, "INTERNAL_ERROR", ToErrorCode(errors.New("boom")))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"title":  "cannot be blank",
		"author": "cannot be blank",
	}}

	assert.Equal(t, "validation failed: author: cannot be blank; title: cannot be blank", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestValidationDetails(t *testing.T) {
	assert.Equal(t, map[string]string{"email": ErrDuplicateEmail.Error()}, ValidationDetails(ErrDuplicateEmail))
	assert.Equal(t, map[string]string{"author": ErrUnknownAuthor.Error()}, ValidationDetails(ErrUnknownAuthor))
	assert.Nil(t, ValidationDetails(ErrAuthorNotFound))
}
