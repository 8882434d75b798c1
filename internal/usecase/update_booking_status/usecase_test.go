package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
)

const (
	managerID  = int64(100)
	customerID = int64(200)
	providerID = int64(1)
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

type fakeProviderClient struct{}

func (f *fakeProviderClient) GetProvider(_ context.Context, id int64) (*providerservice.Provider, error) {
	if id != providerID {
		return nil, providerservice.ErrProviderNotFound
	}
	return &providerservice.Provider{
		ID:         providerID,
		ManagerIDs: []int64{managerID},
	}, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings ...*domain.Booking) (*UseCase, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	uc := NewUseCase(repo, &fakeProviderClient{}, &fakeTxManager{}, nopLogger{})
	return uc, repo
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		UserID:     customerID,
		ProviderID: providerID,
		Status:     status,
	}
}

func TestExecute_AcceptPendingBooking(t *testing.T) {
	uc, repo := newTestUseCase(booking(1, domain.StatusPending))

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    managerID,
		BookingID: 1,
		Action:    ActionAccept,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestExecute_DeclinePendingBookingRecordsReason(t *testing.T) {
	uc, repo := newTestUseCase(booking(1, domain.StatusPending))
	reason := "no free mechanics"

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    managerID,
		BookingID: 1,
		Action:    ActionDecline,
		Reason:    &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	require.NotNil(t, repo.bookings[1].CancellationReason)
	assert.Equal(t, reason, *repo.bookings[1].CancellationReason)
	assert.NotNil(t, repo.bookings[1].CancelledAt)
}

func TestExecute_CompleteConfirmedBooking(t *testing.T) {
	uc, repo := newTestUseCase(booking(1, domain.StatusConfirmed))

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    managerID,
		BookingID: 1,
		Action:    ActionComplete,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
}

func TestExecute_RejectsInvalidTransitions(t *testing.T) {
	cases := []struct {
		name   string
		status domain.BookingStatus
		action Action
	}{
		{"complete pending", domain.StatusPending, ActionComplete},
		{"accept confirmed", domain.StatusConfirmed, ActionAccept},
		{"decline confirmed", domain.StatusConfirmed, ActionDecline},
		{"accept completed", domain.StatusCompleted, ActionAccept},
		{"decline cancelled", domain.StatusCancelled, ActionDecline},
		{"complete cancelled", domain.StatusCancelled, ActionComplete},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newTestUseCase(booking(1, tc.status))

			_, err := uc.Execute(context.Background(), &Request{
				UserID:    managerID,
				BookingID: 1,
				Action:    tc.action,
			})

			assert.ErrorIs(t, err, ErrInvalidTransition)
			// Статус не изменился
			assert.Equal(t, tc.status, repo.bookings[1].Status)
		})
	}
}

func TestExecute_NonManagerDenied(t *testing.T) {
	uc, repo := newTestUseCase(booking(1, domain.StatusPending))

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    customerID,
		BookingID: 1,
		Action:    ActionAccept,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)
}

func TestExecute_UnknownActionRejected(t *testing.T) {
	uc, _ := newTestUseCase(booking(1, domain.StatusPending))

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    managerID,
		BookingID: 1,
		Action:    Action("approve"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    managerID,
		BookingID: 99,
		Action:    ActionAccept,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
