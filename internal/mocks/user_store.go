package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// MockUserStore implements store.UserStore for testing. Without function
// overrides it behaves like a small in-memory collection keyed by email.
type MockUserStore struct {
	UpsertFn     func(ctx context.Context, email string, profile domain.Document) (*domain.UpdateResult, error)
	GetByEmailFn func(ctx context.Context, email string) (domain.Document, error)
	ListFn       func(ctx context.Context) ([]domain.Document, error)

	mu    sync.Mutex
	Users map[string]domain.Document
	Err   error

	// GetByEmailCalls records the emails looked up
	GetByEmailCalls []string
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store seeded with users.
func NewMockUserStore(users ...domain.Document) *MockUserStore {
	m := &MockUserStore{Users: make(map[string]domain.Document)}
	for _, u := range users {
		m.Users[u.Email()] = u
	}
	return m
}

// Upsert implements the UserStore interface
func (m *MockUserStore) Upsert(
	ctx context.Context,
	email string,
	profile domain.Document,
) (*domain.UpdateResult, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, email, profile)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Users == nil {
		m.Users = make(map[string]domain.Document)
	}

	existing, ok := m.Users[email]
	if !ok {
		doc := domain.Document{domain.FieldEmail: email}
		for k, v := range profile.Without(domain.FieldID) {
			doc[k] = v
		}
		m.Users[email] = doc
		id := "mock-" + email
		return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
	}

	for k, v := range profile.Without(domain.FieldID) {
		existing[k] = v
	}
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (domain.Document, error) {
	m.mu.Lock()
	m.GetByEmailCalls = append(m.GetByEmailCalls, email)
	m.mu.Unlock()

	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.Document, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]domain.Document, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	return users, nil
}
