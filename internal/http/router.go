package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/representations"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	useJSONFieldNames()

	presenter := cfg.Presenter
	if presenter == nil {
		presenter = representations.NewPresenter()
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(Recovery())
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
	}

	// Create controllers with the interfaces they need
	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.Library, presenter)
	booksController := NewBooksController(cfg.Library, presenter)
	queriesController := NewQueriesController(cfg.Library, presenter)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	if cfg.Metrics != nil {
		router.GET("/metrics", cfg.Metrics.Handler())
	}

	// Authors
	router.GET("/author", authorsController.List)
	router.POST("/author", authorsController.Create)
	router.GET("/author/:id", authorsController.Retrieve)
	router.PUT("/author/:id", authorsController.Update)
	router.PATCH("/author/:id", authorsController.PartialUpdate)
	router.DELETE("/author/:id", authorsController.Delete)

	// Books
	router.GET("/books", booksController.List)
	router.POST("/books", booksController.Create)
	router.GET("/books/:id", booksController.Retrieve)
	router.PUT("/books/:id", booksController.Update)
	router.PATCH("/books/:id", booksController.PartialUpdate)
	router.DELETE("/books/:id", booksController.Delete)

	// Queries
	router.GET("/books-published-after/:date", queriesController.BooksPublishedAfter)
	router.GET("/authors-with-multiple-books", queriesController.AuthorsWithMultipleBooks)

	return router
}
