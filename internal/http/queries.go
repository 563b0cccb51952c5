package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/representations"
)

type QueriesController struct {
	service   QueryService
	presenter *representations.Presenter
}

func NewQueriesController(service QueryService, presenter *representations.Presenter) *QueriesController {
	return &QueriesController{
		service:   service,
		presenter: presenter,
	}
}

// BooksPublishedAfter lists books published strictly after :date (YYYY-MM-DD).
func (controller *QueriesController) BooksPublishedAfter(c *gin.Context) {
	books, err := controller.service.BooksPublishedAfter(c.Param("date"))
	if err != nil {
		respondServiceError(c, err, "books published after")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Books(books))
}

// AuthorsWithMultipleBooks lists authors owning more than one book.
func (controller *QueriesController) AuthorsWithMultipleBooks(c *gin.Context) {
	authors, err := controller.service.AuthorsWithMultipleBooks()
	if err != nil {
		respondInternalError(c, err, "authors with multiple books")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Authors(authors))
}
