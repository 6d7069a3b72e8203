package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	bookingRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/booking"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/bookings/models"
)

type fakeRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(repo BookingRepository, today time.Time) *Service {
	s := NewService(repo, nopLogger{})
	s.timeProvider = &fakeClock{now: today}
	return s
}

func TestGetUserBookings_Grouping(t *testing.T) {
	today := day(2026, 8, 29)
	repo := newFakeRepo(
		&domain.Booking{ID: "b1", UserID: "u1", Date: day(2026, 9, 5), Status: domain.StatusUpcoming},
		&domain.Booking{ID: "b2", UserID: "u1", Date: day(2026, 8, 29), Status: domain.StatusUpcoming},
		&domain.Booking{ID: "b3", UserID: "u1", Date: day(2026, 8, 1), Status: domain.StatusUpcoming},
		&domain.Booking{ID: "b4", UserID: "u1", Date: day(2026, 9, 10), Status: domain.StatusCancelled},
		&domain.Booking{ID: "b5", UserID: "u1", Date: day(2026, 7, 15), Status: domain.StatusCompleted},
		&domain.Booking{ID: "b6", UserID: "u2", Date: day(2026, 9, 5), Status: domain.StatusUpcoming},
	)
	svc := newTestService(repo, today)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "u1"})
	require.NoError(t, err)

	// Сегодняшняя дата считается предстоящей; отмененные и завершенные -
	// всегда прошедшие, даже с будущей датой
	upcoming := ids(resp.Upcoming)
	past := ids(resp.Past)
	assert.ElementsMatch(t, []string{"b1", "b2"}, upcoming)
	assert.ElementsMatch(t, []string{"b3", "b4", "b5"}, past)
}

func TestGetUserBookings_ReadDoesNotMutateStatus(t *testing.T) {
	repo := newFakeRepo(
		&domain.Booking{ID: "b1", UserID: "u1", Date: day(2026, 8, 1), Status: domain.StatusUpcoming},
	)
	svc := newTestService(repo, day(2026, 8, 29))

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "u1"})
	require.NoError(t, err)

	// Дата прошла, но хранимый статус остается upcoming
	assert.Equal(t, domain.StatusUpcoming, repo.bookings["b1"].Status)
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeRepo(
		&domain.Booking{ID: "b1", UserID: "u1", Date: day(2026, 9, 5), Status: domain.StatusUpcoming},
	)
	svc := newTestService(repo, day(2026, 8, 29))

	err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings["b1"].Status)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := newFakeRepo(
		&domain.Booking{ID: "b1", UserID: "u1", Status: domain.StatusUpcoming},
	)
	svc := newTestService(repo, day(2026, 8, 29))

	err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{UserID: "u2"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusUpcoming, repo.bookings["b1"].Status)
}

func TestCancel_NotRepeatable(t *testing.T) {
	repo := newFakeRepo(
		&domain.Booking{ID: "b1", UserID: "u1", Status: domain.StatusUpcoming},
	)
	svc := newTestService(repo, day(2026, 8, 29))

	require.NoError(t, svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{UserID: "u1"}))

	err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{UserID: "u1"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_CompletedRejected(t *testing.T) {
	repo := newFakeRepo(
		&domain.Booking{ID: "b1", UserID: "u1", Status: domain.StatusCompleted},
	)
	svc := newTestService(repo, day(2026, 8, 29))

	err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{UserID: "u1"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), day(2026, 8, 29))

	err := svc.Cancel(context.Background(), "missing", &models.CancelBookingRequest{UserID: "u1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func ids(items []models.BookingResponse) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
