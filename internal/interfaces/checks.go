package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/authors"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// AuthorStore implementations
var _ services.AuthorStore = (*authors.Repository)(nil)

// BookStore implementations
var _ services.BookStore = (*books.Repository)(nil)

// =============================================================================
// HTTP Layer
// =============================================================================

// Controller dependencies
var _ http.LibraryService = (*services.LibraryService)(nil)
var _ http.AuthorService = (*services.LibraryService)(nil)
var _ http.BookService = (*services.LibraryService)(nil)
var _ http.QueryService = (*services.LibraryService)(nil)

// Health check
var _ http.Pinger = (*database.Database)(nil)
