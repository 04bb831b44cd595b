package api

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/store"
)

// memUserStore is an in-memory store.UserStore for handler tests.
type memUserStore struct {
	mu      sync.Mutex
	byName  map[string]*domain.User
	byID    map[uuid.UUID]*domain.User
	nextErr error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{
		byName: make(map[string]*domain.User),
		byID:   make(map[uuid.UUID]*domain.User),
	}
}

func (s *memUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nextErr != nil {
		return s.nextErr
	}
	if _, exists := s.byName[user.Username]; exists {
		return store.ErrUsernameExists
	}
	u := *user
	s.byName[u.Username] = &u
	s.byID[u.ID] = &u
	return nil
}

func (s *memUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *memUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byName[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *memUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// stubJWTService returns a fixed token on generation and maps token
// strings to subjects on validation.
type stubJWTService struct {
	token       string
	generateErr error
	subjects    map[string]string // token -> subject
	validateErr error
}

func (s *stubJWTService) GenerateToken(ctx context.Context, subject string) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	return s.token, nil
}

func (s *stubJWTService) GenerateTokenWithTTL(
	ctx context.Context,
	subject string,
	ttl time.Duration,
) (string, error) {
	return s.GenerateToken(ctx, subject)
}

func (s *stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	subject, ok := s.subjects[tokenString]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{Subject: subject}, nil
}

// stubVerifier accepts or rejects every password.
type stubVerifier struct {
	hashErr    error
	compareErr error
}

func (v *stubVerifier) Hash(password string) (string, error) {
	if v.hashErr != nil {
		return "", v.hashErr
	}
	return "hashed:" + password, nil
}

func (v *stubVerifier) Compare(hashedPassword, password string) error {
	return v.compareErr
}

// memTaskStore is an in-memory store.TaskStore for handler tests.
type memTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (s *memTaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := *task
	s.tasks[t.ID] = &t
	return nil
}

func (s *memTaskStore) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range tasks {
		t := *task
		s.tasks[t.ID] = &t
	}
	return nil
}

func (s *memTaskStore) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	t := *task
	return &t, nil
}

func (s *memTaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Task
	for _, task := range s.tasks {
		if task.OwnerID == ownerID {
			t := *task
			out = append(out, &t)
		}
	}
	return out, nil
}

func (s *memTaskStore) Update(
	ctx context.Context,
	id, ownerID uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	task.Title = update.Title
	task.Description = update.Description
	t := *task
	return &t, nil
}

func (s *memTaskStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *memTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }

// memBookStore is an in-memory store.BookStore for handler tests.
type memBookStore struct {
	mu    sync.Mutex
	books map[uuid.UUID]*domain.Book
}

func newMemBookStore() *memBookStore {
	return &memBookStore{books: make(map[uuid.UUID]*domain.Book)}
}

func (s *memBookStore) Create(ctx context.Context, book *domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *book
	s.books[b.ID] = &b
	return nil
}

func (s *memBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	b := *book
	return &b, nil
}

func (s *memBookStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.BookUpdate,
) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	book.Title = update.Title
	book.Description = update.Description
	b := *book
	return &b, nil
}

func (s *memBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *memBookStore) WithTx(tx *sql.Tx) store.BookStore { return s }

// noopCache implements taskcache.CacheLayer as an always-miss cache so
// handlers can run against the real cache-aside service without a backend.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) ([]byte, bool)                   { return nil, false }
func (noopCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {}
func (noopCache) Delete(ctx context.Context, key string)                               {}
func (noopCache) DeleteMatching(ctx context.Context, pattern string)                   {}
