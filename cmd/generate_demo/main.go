// Command generate_demo creates a demo database with a few authors and books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/logging"
	"github.com/mrlokans/bookshelf/internal/services"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// demoAuthor holds an author and the books to create for them.
type demoAuthor struct {
	Author services.AuthorInput
	Books  []services.BookInput
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	logging.Init(config.Log{Level: "info", Format: "console", MaxSizeMB: 1})

	log.Info().Str("path", *dbPath).Msg("Generating demo database")

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to remove existing demo database")
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create demo directory")
	}

	db, err := database.NewSQLiteDatabase(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create database")
	}
	defer db.Close()

	library := services.NewLibraryService(db.Authors, db.Books)

	for _, demo := range demoAuthors() {
		author, err := library.CreateAuthor(demo.Author)
		if err != nil {
			log.Error().Err(err).Str("author", demo.Author.Name).Msg("Failed to save author")
			continue
		}

		for _, book := range demo.Books {
			book.Author = services.AuthorRef(author.ID)
			if _, err := library.CreateBook(book); err != nil {
				log.Error().Err(err).Str("book", book.Title).Msg("Failed to save book")
				continue
			}
		}
		log.Info().Str("author", author.Name).Int("books", len(demo.Books)).Msg("Saved")
	}

	log.Info().Msg("Demo database generated successfully!")
}

// demoAuthors returns public domain authors: one with several books, one
// with a single book and one with none.
func demoAuthors() []demoAuthor {
	return []demoAuthor{
		{
			Author: services.AuthorInput{Name: "Jane Austen", Email: "jane.austen@example.com"},
			Books: []services.BookInput{
				{Title: "Sense and Sensibility", PublishedDate: "1811-10-30"},
				{Title: "Pride and Prejudice", PublishedDate: "1813-01-28"},
				{Title: "Emma", PublishedDate: "1815-12-23"},
			},
		},
		{
			Author: services.AuthorInput{Name: "Mary Shelley", Email: "mary.shelley@example.com"},
			Books: []services.BookInput{
				{Title: "Frankenstein", PublishedDate: "1818-01-01"},
			},
		},
		{
			Author: services.AuthorInput{Name: "Herman Melville", Email: "herman.melville@example.com"},
			Books: []services.BookInput{
				{Title: "Moby-Dick", PublishedDate: "1851-10-18"},
				{Title: "Bartleby, the Scrivener", PublishedDate: "1853-11-01"},
			},
		},
		{
			Author: services.AuthorInput{Name: "Anonymous", Email: "anonymous@example.com"},
		},
	}
}
