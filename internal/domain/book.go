package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Book validation errors. All wrap ErrValidation.
var (
	ErrEmptyBookID    = fmt.Errorf("%w: book ID cannot be empty", ErrValidation)
	ErrEmptyBookTitle = fmt.Errorf("%w: book title cannot be empty", ErrValidation)
)

// Book is a shared catalog entry. Books are not owned by users and are
// served straight from the record store without caching.
type Book struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBook creates a Book with the given title and description.
func NewBook(title, description string) (*Book, error) {
	now := time.Now().UTC()
	book := &Book{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks the Book fields.
func (b *Book) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBookID
	}
	if b.Title == "" {
		return ErrEmptyBookTitle
	}
	return nil
}
