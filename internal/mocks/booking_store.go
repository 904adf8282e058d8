package mocks

import (
	"context"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// MockBookingStore implements store.BookingStore for testing
type MockBookingStore struct {
	CreateFn func(ctx context.Context, booking domain.Document) (*domain.InsertResult, error)
	ListFn   func(ctx context.Context, guestEmail string) ([]domain.Document, error)
	DeleteFn func(ctx context.Context, id string) (*domain.DeleteResult, error)

	// Default response values. Nil results are generated from Bookings.
	Bookings     []domain.Document
	InsertResult *domain.InsertResult
	DeleteResult *domain.DeleteResult
	Err          error

	// Call tracking for verification
	Created     []domain.Document
	GuestEmails []string
	DeletedIDs  []string
}

var _ store.BookingStore = (*MockBookingStore)(nil)

// Create implements the BookingStore interface
func (m *MockBookingStore) Create(ctx context.Context, booking domain.Document) (*domain.InsertResult, error) {
	m.Created = append(m.Created, booking)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, booking)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.InsertResult != nil {
		return m.InsertResult, nil
	}
	return generatedInsert(booking, len(m.Created)), nil
}

// List implements the BookingStore interface
func (m *MockBookingStore) List(ctx context.Context, guestEmail string) ([]domain.Document, error) {
	m.GuestEmails = append(m.GuestEmails, guestEmail)
	if m.ListFn != nil {
		return m.ListFn(ctx, guestEmail)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bookings, nil
}

// Delete implements the BookingStore interface
func (m *MockBookingStore) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	m.DeletedIDs = append(m.DeletedIDs, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.DeleteResult != nil {
		return m.DeleteResult, nil
	}
	return generatedDelete(m.Bookings, id), nil
}

// MockPinger implements store.Pinger for testing
type MockPinger struct {
	Err error
}

var _ store.Pinger = (*MockPinger)(nil)

// Ping implements the Pinger interface
func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Err
}
