package resolve_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

type fakeSource struct {
	busy  []domain.BusyInterval
	err   error
	calls int
}

func (s *fakeSource) Busy(_ context.Context, _, _ time.Time) ([]domain.BusyInterval, error) {
	s.calls++
	return s.busy, s.err
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(source BusyIntervalSource, now time.Time) *UseCase {
	uc := NewUseCase(source, nopLogger{})
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestExecute_NineAscendingSlots(t *testing.T) {
	uc := newTestUseCase(&fakeSource{}, date(2026, time.March, 1))

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, time.March, 10), Hours: 3})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 9)
	assert.Equal(t, "08:00 AM", resp.Slots[0].Label)
	assert.Equal(t, "04:00 PM", resp.Slots[8].Label)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i].Start.After(resp.Slots[i-1].Start))
	}
}

func TestExecute_ConflictMarking(t *testing.T) {
	day := date(2026, time.March, 10)
	busyStart := day.Add(11*time.Hour + 30*time.Minute)
	source := &fakeSource{busy: []domain.BusyInterval{
		{Start: busyStart, End: busyStart.Add(time.Hour)},
	}}
	uc := newTestUseCase(source, date(2026, time.March, 1))

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 2})
	require.NoError(t, err)
	require.False(t, resp.Simulated)

	// Busy 11:30-12:30 with 2h slots: 08:00 and 09:00 end before 11:30,
	// 10:00-12:00, 11:00-13:00 and 12:00-14:00 overlap, 01:00 PM onward is free.
	byLabel := map[string]bool{}
	for _, s := range resp.Slots {
		byLabel[s.Label] = s.Available
	}
	assert.True(t, byLabel["08:00 AM"])
	assert.True(t, byLabel["09:00 AM"])
	assert.False(t, byLabel["10:00 AM"])
	assert.False(t, byLabel["11:00 AM"])
	assert.False(t, byLabel["12:00 PM"])
	assert.True(t, byLabel["01:00 PM"])
	assert.True(t, byLabel["04:00 PM"])
}

func TestExecute_TouchingIntervalIsNotConflict(t *testing.T) {
	day := date(2026, time.March, 10)
	// Busy 10:00-11:00: the 08:00 slot with 2h duration ends exactly at 10:00.
	source := &fakeSource{busy: []domain.BusyInterval{
		{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
	}}
	uc := newTestUseCase(source, date(2026, time.March, 1))

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 2})
	require.NoError(t, err)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
}

func TestExecute_CancelledIntervalsIgnored(t *testing.T) {
	day := date(2026, time.March, 10)
	source := &fakeSource{busy: []domain.BusyInterval{
		{Start: day.Add(8 * time.Hour), End: day.Add(18 * time.Hour), Cancelled: true},
	}}
	uc := newTestUseCase(source, date(2026, time.March, 1))

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 3})
	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s", s.Label)
	}
}

func TestExecute_FallbackIsDeterministic(t *testing.T) {
	day := date(2026, time.March, 10)
	source := &fakeSource{err: errors.New("calendar unreachable")}
	uc := newTestUseCase(source, date(2026, time.March, 1))

	first, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 3})
	require.NoError(t, err)
	require.True(t, first.Simulated)

	second, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 3})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_FallbackPatternMatchesSeedRule(t *testing.T) {
	day := date(2026, time.March, 10) // seed = 10 + 3 + 2026 = 2039
	uc := newTestUseCase(&fakeSource{err: errors.New("boom")}, date(2026, time.March, 1))

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 3})
	require.NoError(t, err)

	seed := 2039
	for i, s := range resp.Slots {
		wantBusy := (seed+i)%3 == 0 || (seed*i)%5 == 0
		assert.Equal(t, !wantBusy, s.Available, "slot index %d", i)
	}
	// Index 0 is always busy under the rule: seed*0 % 5 == 0.
	assert.False(t, resp.Slots[0].Available)
}

func TestExecute_DifferentDatesDifferentPatterns(t *testing.T) {
	uc := newTestUseCase(&fakeSource{err: errors.New("boom")}, date(2026, time.March, 1))

	a, err := uc.Execute(context.Background(), &Request{Date: date(2026, time.March, 10), Hours: 3})
	require.NoError(t, err)
	b, err := uc.Execute(context.Background(), &Request{Date: date(2026, time.March, 11), Hours: 3})
	require.NoError(t, err)

	availA := make([]bool, len(a.Slots))
	availB := make([]bool, len(b.Slots))
	for i := range a.Slots {
		availA[i] = a.Slots[i].Available
		availB[i] = b.Slots[i].Available
	}
	assert.NotEqual(t, availA, availB)
}

func TestExecute_PastSlotsForcedUnavailableToday(t *testing.T) {
	day := date(2026, time.March, 10)
	// 11:45: slots up to and including 12:00 PM start less than 30 minutes out.
	now := day.Add(11*time.Hour + 45*time.Minute)
	uc := newTestUseCase(&fakeSource{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 2})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		if s.Start.Before(now.Add(30 * time.Minute)) {
			assert.False(t, s.Available, "slot %s should be past-filtered", s.Label)
		} else {
			assert.True(t, s.Available, "slot %s", s.Label)
		}
	}
	// 12:00 PM starts in 15 minutes - inside the buffer.
	assert.False(t, resp.Slots[4].Available)
	// 01:00 PM starts in 1h15m.
	assert.True(t, resp.Slots[5].Available)
}

func TestExecute_PastFilterAppliesOverSimulation(t *testing.T) {
	day := date(2026, time.March, 10)
	now := day.Add(23 * time.Hour)
	uc := newTestUseCase(&fakeSource{err: errors.New("boom")}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 3})
	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
	}
}

func TestExecute_NonTodayUnaffectedByClock(t *testing.T) {
	day := date(2026, time.March, 11)
	now := date(2026, time.March, 10).Add(23 * time.Hour)
	uc := newTestUseCase(&fakeSource{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 2})
	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeSource{}, date(2026, time.March, 1))

	_, err := uc.Execute(context.Background(), &Request{Hours: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: date(2026, time.March, 10)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotIDsEncodeSource(t *testing.T) {
	day := date(2026, time.March, 10)
	uc := newTestUseCase(&fakeSource{}, date(2026, time.March, 1))

	real, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 2})
	require.NoError(t, err)
	assert.Equal(t, "slot-0", real.Slots[0].ID)

	uc = newTestUseCase(&fakeSource{err: errors.New("boom")}, date(2026, time.March, 1))
	sim, err := uc.Execute(context.Background(), &Request{Date: day, Hours: 2})
	require.NoError(t, err)
	assert.Equal(t, "sim-slot-0", sim.Slots[0].ID)
}
