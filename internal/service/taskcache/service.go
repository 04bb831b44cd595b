package taskcache

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
	"github.com/tasknest/tasknest-api/internal/store"
)

// Service orchestrates task operations across the record store and the
// task cache. Reads are read-through: consult the cache, fall back to
// the store on a miss, repopulate. Mutations commit to the store first
// and only then touch the cache, so a crash between the two steps
// leaves at worst a stale entry bounded by its TTL.
type Service struct {
	tasks  store.TaskStore
	cache  *TaskCache
	logger *slog.Logger
}

// NewService creates a Service over the given store and cache.
// If log is nil, the process default is used.
func NewService(tasks store.TaskStore, cache *TaskCache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		tasks:  tasks,
		cache:  cache,
		logger: log.With(slog.String("component", "task_service")),
	}
}

// Create validates and persists a new task for the owner, then caches
// the fresh snapshot and invalidates the owner's listing so the next
// list read repopulates from the store.
func (s *Service) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, title, description)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.cache.WriteTask(ctx, task, 0)
	s.cache.InvalidateUserListing(ctx, ownerID)

	return task, nil
}

// TaskDraft is the input for one task in a batch create.
type TaskDraft struct {
	Title       string
	Description string
}

// CreateBatch validates and persists several tasks for the owner in one
// atomic store operation, then caches each snapshot and invalidates the
// owner's listing. A validation failure on any draft rejects the whole
// batch before the store is touched.
func (s *Service) CreateBatch(
	ctx context.Context,
	ownerID uuid.UUID,
	drafts []TaskDraft,
) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(drafts))
	for _, draft := range drafts {
		task, err := domain.NewTask(ownerID, draft.Title, draft.Description)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := s.tasks.CreateBatch(ctx, tasks); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		s.cache.WriteTask(ctx, task, 0)
	}
	s.cache.InvalidateUserListing(ctx, ownerID)

	return tasks, nil
}

// Get returns the task with the given ID, scoped to the owner. A cache
// hit skips the store; a miss falls through and repopulates the
// snapshot entry.
func (s *Service) Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error) {
	if task, ok := s.cache.ReadTask(ctx, id, ownerID); ok {
		return task, nil
	}

	task, err := s.tasks.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	s.cache.WriteTask(ctx, task, 0)
	return task, nil
}

// List returns all of the owner's tasks in creation order, serving from
// the listing cache when possible and repopulating it on a miss.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	if tasks, ok := s.cache.ReadUserTasks(ctx, ownerID); ok {
		return tasks, nil
	}

	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.cache.WriteUserTasks(ctx, ownerID, tasks, 0)
	return tasks, nil
}

// Update commits the new title and description to the store, rewrites
// the snapshot entry, and invalidates the owner's listing.
// Returns store.ErrTaskNotFound if no such task exists for that owner.
func (s *Service) Update(
	ctx context.Context,
	id, ownerID uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	task, err := s.tasks.Update(ctx, id, ownerID, update)
	if err != nil {
		return nil, err
	}

	s.cache.WriteTask(ctx, task, 0)
	s.cache.InvalidateUserListing(ctx, ownerID)

	return task, nil
}

// Delete removes the task from the store, then drops both its snapshot
// entry and the owner's listing entry.
// Returns store.ErrTaskNotFound if no such task exists for that owner.
func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.tasks.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.cache.InvalidateTask(ctx, id)
	s.cache.InvalidateUserListing(ctx, ownerID)

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("task deleted and cache invalidated",
		slog.String("task_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}
