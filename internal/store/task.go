package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/domain"
)

// TaskUpdate carries the mutable fields of a task for an update operation.
// The owner ID is immutable and therefore absent.
type TaskUpdate struct {
	Title       string
	Description string
}

// TaskStore defines the interface for task data persistence. Every
// operation that targets a single task is scoped to its owner: a task
// that exists but belongs to a different user is reported as not found.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owner does not exist (foreign key).
	Create(ctx context.Context, task *domain.Task) error

	// CreateBatch saves several tasks atomically: either every task is
	// persisted or none are.
	CreateBatch(ctx context.Context, tasks []*domain.Task) error

	// GetByID retrieves a task by ID, scoped to the given owner.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// ListByOwner retrieves all tasks owned by the given user, ordered by
	// creation time ascending. An owner with no tasks yields an empty slice.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Update modifies the title and description of an existing task,
	// scoped to the given owner. Returns the updated task.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Update(ctx context.Context, id, ownerID uuid.UUID, update TaskUpdate) (*domain.Task, error)

	// Delete removes a task, scoped to the given owner.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// WithTx returns a TaskStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
