// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorReader / AuthorStore: author persistence (internal/services/interfaces.go)
//   - BookReader / BookStore: book persistence (internal/services/interfaces.go)
//
// Implemented by the gorm repositories in internal/database/authors and
// internal/database/books.
//
// ## HTTP Interfaces
//
//   - AuthorService, BookService, QueryService: what each controller calls
//     (internal/http/stores.go)
//   - LibraryService: the union wired by NewRouter
//   - Pinger: storage connectivity for /health
//
// Implemented by *services.LibraryService and *database.Database.
//
// # Adding a Store Backend
//
// A new backend only needs to satisfy AuthorStore and BookStore. The two
// invariants callers rely on:
//
//   - AuthorStore.Delete removes the author's books in the same operation.
//   - BookReader.PublishedAfter is exclusive: a book published on the given
//     date is not returned.
//
// Add a compile-time check to checks.go for every new implementation.
package interfaces
