package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/representations"
	"github.com/mrlokans/bookshelf/internal/services"
)

type AuthorsController struct {
	service   AuthorService
	presenter *representations.Presenter
}

func NewAuthorsController(service AuthorService, presenter *representations.Presenter) *AuthorsController {
	return &AuthorsController{
		service:   service,
		presenter: presenter,
	}
}

func (controller *AuthorsController) List(c *gin.Context) {
	authors, err := controller.service.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Authors(authors))
}

func (controller *AuthorsController) Retrieve(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "author")
	if !ok {
		return
	}

	author, err := controller.service.GetAuthor(id)
	if err != nil {
		respondServiceError(c, err, "get author")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Author(author))
}

func (controller *AuthorsController) Create(c *gin.Context) {
	var in services.AuthorInput
	if !bindBody(c, &in) {
		return
	}

	author, err := controller.service.CreateAuthor(in)
	if err != nil {
		respondServiceError(c, err, "create author")
		return
	}

	c.Header("Location", fmt.Sprintf("/author/%d", author.ID))
	c.JSON(http.StatusCreated, controller.presenter.Author(author))
}

// Update replaces all writable fields (PUT).
func (controller *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "author")
	if !ok {
		return
	}
	var in services.AuthorInput
	if !bindBody(c, &in) {
		return
	}

	author, err := controller.service.UpdateAuthor(id, in)
	if err != nil {
		respondServiceError(c, err, "update author")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Author(author))
}

// PartialUpdate changes only the fields present in the body (PATCH).
func (controller *AuthorsController) PartialUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "author")
	if !ok {
		return
	}
	var patch services.AuthorPatch
	if !bindBody(c, &patch) {
		return
	}

	author, err := controller.service.PatchAuthor(id, patch)
	if err != nil {
		respondServiceError(c, err, "patch author")
		return
	}
	c.JSON(http.StatusOK, controller.presenter.Author(author))
}

// Delete removes the author and every book they wrote.
func (controller *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "author")
	if !ok {
		return
	}

	if err := controller.service.DeleteAuthor(id); err != nil {
		respondServiceError(c, err, "delete author")
		return
	}
	c.Status(http.StatusNoContent)
}
