package mocks

import (
	"context"
	"fmt"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// MockHomeStore implements store.HomeStore for testing
type MockHomeStore struct {
	CreateFn      func(ctx context.Context, home domain.Document) (*domain.InsertResult, error)
	ListFn        func(ctx context.Context, filter store.HomeFilter) ([]domain.Document, error)
	GetByIDFn     func(ctx context.Context, id string) (domain.Document, error)
	UpdateFirstFn func(ctx context.Context, home domain.Document) (*domain.UpdateResult, error)
	DeleteFn      func(ctx context.Context, id string) (*domain.DeleteResult, error)

	// Default response values. Nil results are generated from Homes the way a
	// real collection would answer.
	Homes        []domain.Document
	InsertResult *domain.InsertResult
	UpdateResult *domain.UpdateResult
	DeleteResult *domain.DeleteResult
	Err          error

	// Call tracking for verification
	Created     []domain.Document
	Filters     []store.HomeFilter
	Updated     []domain.Document
	RequestedID []string
}

var _ store.HomeStore = (*MockHomeStore)(nil)

// Create implements the HomeStore interface
func (m *MockHomeStore) Create(ctx context.Context, home domain.Document) (*domain.InsertResult, error) {
	m.Created = append(m.Created, home)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, home)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.InsertResult != nil {
		return m.InsertResult, nil
	}
	return generatedInsert(home, len(m.Created)), nil
}

// List implements the HomeStore interface
func (m *MockHomeStore) List(ctx context.Context, filter store.HomeFilter) ([]domain.Document, error) {
	m.Filters = append(m.Filters, filter)
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Homes, nil
}

// GetByID implements the HomeStore interface
func (m *MockHomeStore) GetByID(ctx context.Context, id string) (domain.Document, error) {
	m.RequestedID = append(m.RequestedID, id)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Homes) == 0 {
		return nil, store.ErrHomeNotFound
	}
	return m.Homes[0], nil
}

// UpdateFirst implements the HomeStore interface
func (m *MockHomeStore) UpdateFirst(ctx context.Context, home domain.Document) (*domain.UpdateResult, error) {
	m.Updated = append(m.Updated, home)
	if m.UpdateFirstFn != nil {
		return m.UpdateFirstFn(ctx, home)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.UpdateResult != nil {
		return m.UpdateResult, nil
	}
	if len(m.Homes) == 0 {
		id := mockObjectID(len(m.Updated))
		return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
	}
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// Delete implements the HomeStore interface
func (m *MockHomeStore) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	m.RequestedID = append(m.RequestedID, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.DeleteResult != nil {
		return m.DeleteResult, nil
	}
	return generatedDelete(m.Homes, id), nil
}

// mockObjectID returns a deterministic 24 character hex id.
func mockObjectID(n int) string {
	return fmt.Sprintf("%024x", n)
}

// generatedInsert keeps a caller supplied _id and otherwise assigns the n-th
// mock id.
func generatedInsert(doc domain.Document, n int) *domain.InsertResult {
	id := doc.String(domain.FieldID)
	if id == "" {
		id = mockObjectID(n)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}
}

// generatedDelete counts the documents whose _id matches id.
func generatedDelete(docs []domain.Document, id string) *domain.DeleteResult {
	var n int64
	for _, d := range docs {
		if d.String(domain.FieldID) == id {
			n++
		}
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: n}
}
