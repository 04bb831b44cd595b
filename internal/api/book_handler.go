package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// BookHandler handles requests for the shared book catalog. Books carry
// no ownership and are served straight from the record store.
type BookHandler struct {
	books     store.BookStore
	validator *validator.Validate
}

// NewBookHandler creates a BookHandler backed by the given store.
func NewBookHandler(books store.BookStore) *BookHandler {
	return &BookHandler{
		books:     books,
		validator: validator.New(),
	}
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	book, err := domain.NewBook(req.Title, req.Description)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid book data: "+err.Error())
		return
	}

	if err := h.books.Create(r.Context(), book); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create book", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toBookResponse(book))
}

// Get handles GET /books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Book not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to get book", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toBookResponse(book))
}

// Update handles PUT /books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid book ID")
		return
	}

	var req UpdateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	book, err := h.books.Update(r.Context(), id, store.BookUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Book not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to update book", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid book ID")
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Book not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete book", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func bookIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func toBookResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Description: book.Description,
	}
}
