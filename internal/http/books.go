package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/representations"
	"github.com/mrlokans/bookshelf/internal/services"
)

type BooksController struct {
	service   BookService
	presenter *representations.Presenter
}

func NewBooksController(service BookService, presenter *representations.Presenter) *BooksController {
	return &BooksController{
		service:   service,
		presenter: presenter,
	}
}

func (controller *BooksController) List(c *gin.Context) {
	books, err := controller.service.ListBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Books(books))
}

func (controller *BooksController) Retrieve(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "book")
	if !ok {
		return
	}

	book, err := controller.service.GetBook(id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Book(book))
}

// Create stores a new book. The representation carries no id, so the
// new resource is only addressable through the Location header.
func (controller *BooksController) Create(c *gin.Context) {
	var in services.BookInput
	if !bindBody(c, &in) {
		return
	}

	book, err := controller.service.CreateBook(in)
	if err != nil {
		respondServiceError(c, err, "create book")
		return
	}

	c.Header("Location", fmt.Sprintf("/books/%d", book.ID))
	c.JSON(http.StatusCreated, controller.presenter.Book(book))
}

func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "book")
	if !ok {
		return
	}
	var in services.BookInput
	if !bindBody(c, &in) {
		return
	}

	book, err := controller.service.UpdateBook(id, in)
	if err != nil {
		respondServiceError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Book(book))
}

func (controller *BooksController) PartialUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "book")
	if !ok {
		return
	}
	var patch services.BookPatch
	if !bindBody(c, &patch) {
		return
	}

	book, err := controller.service.PatchBook(id, patch)
	if err != nil {
		respondServiceError(c, err, "patch book")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Book(book))
}

func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "book")
	if !ok {
		return
	}

	if err := controller.service.DeleteBook(id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}
