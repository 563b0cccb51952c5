// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations, ping
//	├── authors/         # Author CRUD and the multiple-books query
//	└── books/           # Book CRUD and the published-after query
//
// # Using Sub-packages
//
// NewDatabase wires one repository per sub-package onto the returned
// Database, sharing a single *gorm.DB:
//
//	db, err := database.NewDatabase(cfg.Database)
//	recent, err := db.Books.PublishedAfter(someDate)
//	prolific, err := db.Authors.WithMultipleBooks()
//
// Repositories return gorm errors unchanged (gorm.ErrRecordNotFound,
// gorm.ErrDuplicatedKey). Translating them into domain errors is the job of
// internal/services.
//
// # Referential Integrity
//
// Book.AuthorID carries an ON DELETE CASCADE constraint. sqlite only enforces
// it with foreign keys enabled, so NewDatabase adds _foreign_keys=on to the
// sqlite DSN. authors.Repository.Delete also removes the books explicitly
// inside its transaction.
package database
