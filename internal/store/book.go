package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/domain"
)

// BookUpdate carries the mutable fields of a book for an update operation.
type BookUpdate struct {
	Title       string
	Description string
}

// BookStore defines the interface for book data persistence. Books are a
// shared catalog with no ownership or caching.
type BookStore interface {
	// Create saves a new book to the store.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// Update modifies the title and description of an existing book and
	// returns the updated book.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, id uuid.UUID, update BookUpdate) (*domain.Book, error)

	// Delete removes a book from the store.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a BookStore bound to the provided transaction.
	WithTx(tx *sql.Tx) BookStore
}
