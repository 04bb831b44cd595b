package taskcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
)

// DefaultTTL is the time-to-live applied to both key classes when the
// caller does not override it.
const DefaultTTL = 300 * time.Second

// cachedTask is the serialized form of a task snapshot. It carries the
// owner ID so reads can guard against cross-tenant leakage without a
// store round trip.
type cachedTask struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"user_id"`
}

func toCached(task *domain.Task) cachedTask {
	return cachedTask{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		OwnerID:     task.OwnerID,
	}
}

func (c cachedTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		OwnerID:     c.OwnerID,
	}
}

// TaskCache maintains task snapshots and per-owner listings in a
// CacheLayer. It is purely an accelerator: a miss always means "ask the
// record store", and no method can fail the caller's request.
type TaskCache struct {
	cache      CacheLayer
	defaultTTL time.Duration
	logger     *slog.Logger
}

// New creates a TaskCache over the given cache layer. A non-positive
// defaultTTL falls back to DefaultTTL. If log is nil, the process
// default is used.
func New(cache CacheLayer, defaultTTL time.Duration, log *slog.Logger) *TaskCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &TaskCache{
		cache:      cache,
		defaultTTL: defaultTTL,
		logger:     log.With(slog.String("component", "task_cache")),
	}
}

// ReadTask looks up the snapshot for taskID. It is a hit only when the
// entry exists, deserializes, and its embedded owner matches ownerID;
// an entry cached for a different owner is reported as a miss. This is
// the authorization guard against serving one tenant's task to another,
// and it holds even if a cross-owner entry is planted under the key.
func (tc *TaskCache) ReadTask(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, bool) {
	log := logger.FromContextOrDefault(ctx, tc.logger)

	value, ok := tc.cache.Get(ctx, taskKey(taskID))
	if !ok {
		log.Debug("cache miss for task", slog.String("task_id", taskID.String()))
		return nil, false
	}

	var cached cachedTask
	if err := json.Unmarshal(value, &cached); err != nil {
		log.Warn("malformed cache entry, treating as miss",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()))
		return nil, false
	}

	if cached.OwnerID != ownerID {
		log.Debug("cached task owned by another user, treating as miss",
			slog.String("task_id", taskID.String()))
		return nil, false
	}

	log.Debug("cache hit for task", slog.String("task_id", taskID.String()))
	return cached.toDomain(), true
}

// WriteTask stores the task snapshot under its key. A non-positive ttl
// uses the configured default. Serialization failures are logged and
// dropped; the entry simply is not cached.
func (tc *TaskCache) WriteTask(ctx context.Context, task *domain.Task, ttl time.Duration) {
	log := logger.FromContextOrDefault(ctx, tc.logger)

	if ttl <= 0 {
		ttl = tc.defaultTTL
	}

	value, err := json.Marshal(toCached(task))
	if err != nil {
		log.Warn("failed to serialize task for caching",
			slog.String("task_id", task.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	tc.cache.Put(ctx, taskKey(task.ID), value, ttl)
	log.Debug("cached task", slog.String("task_id", task.ID.String()))
}

// ReadUserTasks looks up the cached listing for ownerID. Absent or
// malformed entries are misses.
func (tc *TaskCache) ReadUserTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, bool) {
	log := logger.FromContextOrDefault(ctx, tc.logger)

	value, ok := tc.cache.Get(ctx, userTasksKey(ownerID))
	if !ok {
		log.Debug("cache miss for user tasks", slog.String("owner_id", ownerID.String()))
		return nil, false
	}

	var cached []cachedTask
	if err := json.Unmarshal(value, &cached); err != nil {
		log.Warn("malformed listing cache entry, treating as miss",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()))
		return nil, false
	}

	tasks := make([]*domain.Task, 0, len(cached))
	for _, c := range cached {
		tasks = append(tasks, c.toDomain())
	}

	log.Debug("cache hit for user tasks",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(tasks)))
	return tasks, true
}

// WriteUserTasks stores the full ordered listing for ownerID. A
// non-positive ttl uses the configured default.
func (tc *TaskCache) WriteUserTasks(
	ctx context.Context,
	ownerID uuid.UUID,
	tasks []*domain.Task,
	ttl time.Duration,
) {
	log := logger.FromContextOrDefault(ctx, tc.logger)

	if ttl <= 0 {
		ttl = tc.defaultTTL
	}

	cached := make([]cachedTask, 0, len(tasks))
	for _, task := range tasks {
		cached = append(cached, toCached(task))
	}

	value, err := json.Marshal(cached)
	if err != nil {
		log.Warn("failed to serialize task listing for caching",
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()))
		return
	}

	tc.cache.Put(ctx, userTasksKey(ownerID), value, ttl)
	log.Debug("cached user tasks",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(tasks)))
}

// InvalidateTask removes the snapshot entry for taskID.
func (tc *TaskCache) InvalidateTask(ctx context.Context, taskID uuid.UUID) {
	tc.cache.Delete(ctx, taskKey(taskID))
}

// InvalidateUserListing removes the listing entry for ownerID.
func (tc *TaskCache) InvalidateUserListing(ctx context.Context, ownerID uuid.UUID) {
	tc.cache.Delete(ctx, userTasksKey(ownerID))
}

// InvalidateAllForUser removes the owner's listing entry and every
// single-task entry in the cache, across all owners. The blast radius
// is deliberately broad: it guarantees no stale snapshot of the target
// owner's tasks survives, at the cost of evicting everyone else's too.
// Callers who know which tasks changed should prefer
// InvalidateUserTasks.
func (tc *TaskCache) InvalidateAllForUser(ctx context.Context, ownerID uuid.UUID) {
	log := logger.FromContextOrDefault(ctx, tc.logger)

	tc.cache.Delete(ctx, userTasksKey(ownerID))
	tc.cache.DeleteMatching(ctx, taskKeyPattern)

	log.Debug("invalidated listing and all task snapshots",
		slog.String("owner_id", ownerID.String()))
}

// InvalidateUserTasks is the narrowly scoped alternative to
// InvalidateAllForUser: it removes the owner's listing entry and only
// the named task snapshots, leaving other owners' entries intact.
func (tc *TaskCache) InvalidateUserTasks(ctx context.Context, ownerID uuid.UUID, taskIDs []uuid.UUID) {
	tc.cache.Delete(ctx, userTasksKey(ownerID))
	for _, id := range taskIDs {
		tc.cache.Delete(ctx, taskKey(id))
	}
}
