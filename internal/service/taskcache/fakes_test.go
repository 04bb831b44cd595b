package taskcache

import (
	"context"
	"database/sql"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// memoryCache is an in-memory CacheLayer with real TTL semantics driven
// by an injectable clock, so expiry tests never sleep.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func newMemoryCache(now func() time.Time) *memoryCache {
	if now == nil {
		now = time.Now
	}
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (m *memoryCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expiresAt: m.now().Add(ttl)}
}

func (m *memoryCache) Delete(ctx context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *memoryCache) DeleteMatching(ctx context.Context, pattern string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.entries, key)
		}
	}
}

// seed plants a raw entry, bypassing the TaskCache write path. Tests use
// it to simulate cross-owner and malformed payloads.
func (m *memoryCache) seed(key string, value []byte) {
	m.Put(context.Background(), key, value, time.Hour)
}

func (m *memoryCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// downCache simulates an unreachable backend: every read misses, every
// write and delete is silently dropped, matching the fail-open contract.
type downCache struct{}

func (downCache) Get(ctx context.Context, key string) ([]byte, bool)                { return nil, false }
func (downCache) Put(ctx context.Context, key string, value []byte, t time.Duration) {}
func (downCache) Delete(ctx context.Context, key string)                            {}
func (downCache) DeleteMatching(ctx context.Context, pattern string)                {}

// fakeTaskStore is an in-memory store.TaskStore with call counters, so
// tests can assert whether a read was served from cache or fell through.
type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task

	createCalls int
	getCalls    int
	listCalls   int
	updateCalls int
	deleteCalls int
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (f *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskStore) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	for _, task := range tasks {
		copied := *task
		f.tasks[task.ID] = &copied
	}
	return nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	tasks := make([]*domain.Task, 0)
	for _, task := range f.tasks {
		if task.OwnerID == ownerID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

func (f *fakeTaskStore) Update(
	ctx context.Context,
	id, ownerID uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	task.Title = update.Title
	task.Description = update.Description
	copied := *task
	return &copied, nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return f }
