package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
	"github.com/tasknest/tasknest-api/internal/store"
)

// BookStore implements store.BookStore using a PostgreSQL database as
// the storage backend.
type BookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBookStore creates a PostgreSQL implementation of store.BookStore.
// If logger is nil, the process default is used.
func NewBookStore(db store.DBTX, log *slog.Logger) *BookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &BookStore{
		db:     db,
		logger: log.With(slog.String("component", "book_store")),
	}
}

var _ store.BookStore = (*BookStore)(nil)

// Create implements store.BookStore.Create.
func (s *BookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return err
	}

	query := `
		INSERT INTO books (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Description,
		book.CreatedAt,
		book.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return MapError(err)
	}

	log.Info("book created", slog.String("book_id", book.ID.String()))
	return nil
}

// GetByID implements store.BookStore.GetByID.
func (s *BookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Description,
		&book.CreatedAt,
		&book.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return nil, MapError(err)
	}

	return &book, nil
}

// Update implements store.BookStore.Update.
func (s *BookStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.BookUpdate,
) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE books
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, title, description, created_at, updated_at
	`

	var book domain.Book
	err := s.db.QueryRowContext(
		ctx,
		query,
		update.Title,
		update.Description,
		time.Now().UTC(),
		id,
	).Scan(
		&book.ID,
		&book.Title,
		&book.Description,
		&book.CreatedAt,
		&book.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("book updated", slog.String("book_id", book.ID.String()))
	return &book, nil
}

// Delete implements store.BookStore.Delete.
func (s *BookStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM books
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return MapError(err)
	}

	if err := checkRowsAffected(result, store.ErrBookNotFound); err != nil {
		return err
	}

	log.Info("book deleted", slog.String("book_id", id.String()))
	return nil
}

// WithTx implements store.BookStore.WithTx.
func (s *BookStore) WithTx(tx *sql.Tx) store.BookStore {
	return &BookStore{
		db:     tx,
		logger: s.logger,
	}
}
