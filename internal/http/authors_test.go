package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/representations"
)

func TestAuthorsController_List(t *testing.T) {
	t.Run("returns empty array when no authors", func(t *testing.T) {
		s := setupTestServer(t)

		w := s.do(t, http.MethodGet, "/author", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns authors with nested books", func(t *testing.T) {
		s := setupTestServer(t)
		id := s.createAuthor(t, "Author1", "author1@gmail.com")
		s.createAuthor(t, "Author2", "author2@gmail.com")
		s.createBook(t, "Book1", "2024-01-01", id)

		w := s.do(t, http.MethodGet, "/author", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		authors := decode[[]representations.AuthorRepresentation](t, w)
		require.Len(t, authors, 2)
		assert.Equal(t, "Author1", authors[0].Name)
		require.Len(t, authors[0].Books, 1)
		assert.Equal(t, "Book1", authors[0].Books[0].Title)
		assert.Equal(t, 10, authors[0].Books[0].SinceCreationInDays)
		assert.NotNil(t, authors[1].Books)
		assert.Empty(t, authors[1].Books)
	})
}

func TestAuthorsController_Create(t *testing.T) {
	t.Run("creates author", func(t *testing.T) {
		s := setupTestServer(t)

		w := s.do(t, http.MethodPost, "/author", map[string]string{
			"name":  "Author1",
			"email": "author1@gmail.com",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		author := decode[representations.AuthorRepresentation](t, w)
		assert.NotZero(t, author.ID)
		assert.Equal(t, "Author1", author.Name)
		assert.Equal(t, "author1@gmail.com", author.Email)
		assert.Empty(t, author.Books)
		assert.Equal(t, "/author/1", w.Header().Get("Location"))

		count, err := s.db.Authors.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("accepts form encoded body", func(t *testing.T) {
		s := setupTestServer(t)
		form := url.Values{"name": {"Author1"}, "email": {"author1@gmail.com"}}

		req, _ := http.NewRequest(http.MethodPost, "/author", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		s := setupTestServer(t)
		s.createAuthor(t, "Author1", "same@gmail.com")

		w := s.do(t, http.MethodPost, "/author", map[string]string{
			"name":  "Author2",
			"email": "same@gmail.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "DUPLICATE_EMAIL", resp.Code)
		assert.Contains(t, resp.Details, "email")

		count, err := s.db.Authors.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("reports binding errors by field", func(t *testing.T) {
		s := setupTestServer(t)

		w := s.do(t, http.MethodPost, "/author", map[string]string{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}](t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.Code)
		assert.Equal(t, "this field is required", resp.Details["name"])
		assert.Equal(t, "must be a valid email address", resp.Details["email"])
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		s := setupTestServer(t)

		req, _ := http.NewRequest(http.MethodPost, "/author", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_BODY", decode[ErrorResponse](t, w).Code)
	})
}

func TestAuthorsController_Retrieve(t *testing.T) {
	s := setupTestServer(t)
	id := s.createAuthor(t, "Author1", "author1@gmail.com")
	s.createBook(t, "Book1", "2024-01-10", id)

	t.Run("returns author", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/author/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"id": 1,
			"name": "Author1",
			"email": "author1@gmail.com",
			"books": [{
				"title": "Book1",
				"published_date": "2024-01-10",
				"author": 1,
				"author_name": "Author1",
				"since_creation_in_days": 1
			}]
		}`, w.Body.String())
	})

	for _, path := range []string{"/author/999", "/author/abc", "/author/0", "/author/-1"} {
		t.Run("not found "+path, func(t *testing.T) {
			w := s.do(t, http.MethodGet, path, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestAuthorsController_Update(t *testing.T) {
	s := setupTestServer(t)
	id := s.createAuthor(t, "Author1", "author1@gmail.com")
	s.createAuthor(t, "Author2", "author2@gmail.com")

	t.Run("full update", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/author/1", map[string]string{
			"name":  "Updated Author",
			"email": "updated@gmail.com",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		author, err := s.db.Authors.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, "Updated Author", author.Name)
		assert.Equal(t, "updated@gmail.com", author.Email)
	})

	t.Run("full update requires every field", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/author/1", map[string]string{"name": "Only name"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("email taken by another author", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/author/1", map[string]string{
			"name":  "Updated Author",
			"email": "author2@gmail.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown author", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/author/999", map[string]string{
			"name":  "Ghost",
			"email": "ghost@gmail.com",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthorsController_PartialUpdate(t *testing.T) {
	s := setupTestServer(t)
	s.createAuthor(t, "Author1", "author1@gmail.com")

	w := s.do(t, http.MethodPatch, "/author/1", map[string]string{"name": "Patched"})

	assert.Equal(t, http.StatusOK, w.Code)
	author := decode[representations.AuthorRepresentation](t, w)
	assert.Equal(t, "Patched", author.Name)
	assert.Equal(t, "author1@gmail.com", author.Email)

	w = s.do(t, http.MethodPatch, "/author/1", map[string]string{"email": "broken"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Details, "email")
}

func TestAuthorsController_Delete(t *testing.T) {
	s := setupTestServer(t)
	id := s.createAuthor(t, "Author1", "author1@gmail.com")
	other := s.createAuthor(t, "Author2", "author2@gmail.com")
	s.createBook(t, "Book1", "2022-01-01", id)
	s.createBook(t, "Book2", "2022-02-01", id)
	s.createBook(t, "Book3", "2023-01-01", other)

	w := s.do(t, http.MethodDelete, "/author/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	authors, err := s.db.Authors.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), authors)
	books, err := s.db.Books.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), books)

	w = s.do(t, http.MethodDelete, "/author/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
