package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/mailer"
	resolveSlots "github.com/dipeshpuri/CleanrCrew-Patched/internal/usecase/resolve_slots"
)

// --- фейки ---

type fakeResolver struct {
	slots   []domain.TimeSlot
	started chan struct{} // если не nil, закрывается при входе в Execute
	block   chan struct{} // если не nil, Execute ждет закрытия канала
}

func (r *fakeResolver) Execute(_ context.Context, req *resolveSlots.Request) (*resolveSlots.Response, error) {
	if r.started != nil {
		close(r.started)
		r.started = nil
	}
	if r.block != nil {
		<-r.block
	}
	return &resolveSlots.Response{
		Date:          req.Date,
		DurationHours: int(req.Hours),
		Slots:         r.slots,
	}, nil
}

type fakeStore struct {
	saved []*domain.Booking
	err   error
}

func (s *fakeStore) Save(_ context.Context, booking *domain.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, booking)
	return nil
}

type fakeSender struct {
	sent []string
}

func (s *fakeSender) Send(to string, _ *mailer.EmailContent) error {
	s.sent = append(s.sent, to)
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

func openSlots() []domain.TimeSlot {
	day := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	slots := make([]domain.TimeSlot, 0, domain.BaseSlotCount)
	for i := 0; i < domain.BaseSlotCount; i++ {
		start := day.Add(time.Duration(domain.FirstSlotHour+i) * time.Hour)
		slots = append(slots, domain.TimeSlot{
			ID:        "slot-" + start.Format("15"),
			Label:     start.Format(domain.SlotLabelFormat),
			Start:     start,
			Available: true,
		})
	}
	return slots
}

func newTestManager(resolver SlotResolver, store BookingStore, sender EmailSender) *Manager {
	m := NewManager(resolver, store, mailer.NewTemplater(), sender, 0, nopLogger{})
	m.timeProvider = &fakeClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
	return m
}

func validContact() ContactDetails {
	return ContactDetails{
		FirstName: "Alex",
		LastName:  "Carter",
		Email:     "alex@example.com",
		Phone:     "(416) 555-0199",
		Address:   "12 King St W",
	}
}

// advanceToPayment проводит черновик до шага оплаты
func advanceToPayment(t *testing.T, m *Manager, d *Draft) {
	t.Helper()

	require.NoError(t, d.SelectService(domain.ServiceStandard))
	require.NoError(t, d.Next())
	require.NoError(t, d.Next())

	d.SetDate(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.RefreshSlots(context.Background(), d))
	require.NoError(t, d.SelectSlot("10:00 AM"))
	require.NoError(t, d.Next())

	d.SetContact(validContact())
	require.NoError(t, d.Next())
	assert.Equal(t, stepPayment, d.Snapshot().Step)
}

// --- гейты и валидация ---

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("foo@bar.com"))
	assert.True(t, ValidEmail("first.last+tag@sub.domain.io"))

	assert.False(t, ValidEmail("foo@bar"))
	assert.False(t, ValidEmail("foo bar@baz.com"))
	assert.False(t, ValidEmail("@bar.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("(416) 555-0199"))
	assert.True(t, ValidPhone("4165550"))

	assert.False(t, ValidPhone("416-55"))
	assert.False(t, ValidPhone("(---) ..."))
}

func TestAddressError(t *testing.T) {
	assert.Equal(t, "", AddressError(""))
	assert.Equal(t, "Address is too short", AddressError("12 K"))
	assert.Equal(t, "Please include a house/building number", AddressError("King Street West"))
	assert.Equal(t, "", AddressError("12 King St W"))
}

func TestNext_GateBlocksWithoutService(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)

	err := d.Next()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, stepService, d.Snapshot().Step)
}

func TestNext_DetailsGateRejectsBadEmail(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)

	require.NoError(t, d.SelectService(domain.ServiceStandard))
	require.NoError(t, d.Next())
	require.NoError(t, d.Next())
	d.SetDate(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.RefreshSlots(context.Background(), d))
	require.NoError(t, d.SelectSlot("10:00 AM"))
	require.NoError(t, d.Next())

	contact := validContact()
	contact.Email = "foo@bar"
	d.SetContact(contact)

	err := d.Next()
	assert.ErrorIs(t, err, ErrStepIncomplete)

	contact.Email = "foo@bar.com"
	d.SetContact(contact)
	assert.NoError(t, d.Next())
}

// --- длительность ---

func TestSetHours_Validation(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)
	require.NoError(t, d.SelectService(domain.ServiceDeep))

	assert.ErrorIs(t, d.SetHours(1.5), ErrInvalidHours)
	assert.ErrorIs(t, d.SetHours(10.5), ErrInvalidHours)
	assert.ErrorIs(t, d.SetHours(3.25), ErrInvalidHours)

	require.NoError(t, d.SetHours(7.5))
	assert.Equal(t, 7.5, d.Snapshot().Hours)
}

func TestDuration_LastWriterWins(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)
	require.NoError(t, d.SelectService(domain.ServiceStandard))

	// Ручной ввод перезаписывает рекомендацию
	require.NoError(t, d.SetHours(6))
	assert.Equal(t, 6.0, d.Snapshot().Hours)

	// Изменение счетчиков перезаписывает ручной ввод
	require.NoError(t, d.AdjustRoom(domain.RoomBedroom, 2))
	snap := d.Snapshot()
	assert.NotEqual(t, 6.0, snap.Hours)
	assert.Equal(t, 4, snap.Residential[domain.RoomBedroom])
}

func TestAdjustRoom_ClampsAtZero(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)
	require.NoError(t, d.SelectService(domain.ServiceStandard))

	require.NoError(t, d.AdjustRoom(domain.RoomBathroom, -5))
	assert.Equal(t, 0, d.Snapshot().Residential[domain.RoomBathroom])
}

// --- расписание и слоты ---

func TestSetDate_ClearsSelectedSlot(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)
	require.NoError(t, d.SelectService(domain.ServiceStandard))

	d.SetDate(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.RefreshSlots(context.Background(), d))
	require.NoError(t, d.SelectSlot("10:00 AM"))
	assert.Equal(t, "10:00 AM", d.Snapshot().TimeSlot)

	d.SetDate(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC))
	snap := d.Snapshot()
	assert.Empty(t, snap.TimeSlot)
	assert.Empty(t, snap.Slots)
}

func TestSelectSlot_Unavailable(t *testing.T) {
	slots := openSlots()
	slots[2].Available = false
	m := newTestManager(&fakeResolver{slots: slots}, &fakeStore{}, nil)
	d := m.Create(nil)
	require.NoError(t, d.SelectService(domain.ServiceStandard))

	d.SetDate(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.RefreshSlots(context.Background(), d))

	assert.ErrorIs(t, d.SelectSlot(slots[2].Label), ErrSlotUnavailable)
	assert.ErrorIs(t, d.SelectSlot("07:00 PM"), ErrSlotNotOffered)
}

func TestRefreshSlots_StaleResponseDiscarded(t *testing.T) {
	resolver := &fakeResolver{slots: openSlots(), started: make(chan struct{}), block: make(chan struct{})}
	m := newTestManager(resolver, &fakeStore{}, nil)
	d := m.Create(nil)
	require.NoError(t, d.SelectService(domain.ServiceStandard))

	d.SetDate(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))

	started := resolver.started
	done := make(chan error, 1)
	go func() {
		done <- m.RefreshSlots(context.Background(), d)
	}()

	// Дата меняется, пока первый запрос в полете: его ответ должен быть отброшен
	<-started
	d.SetDate(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC))
	close(resolver.block)
	require.NoError(t, <-done)

	assert.Empty(t, d.Snapshot().Slots)

	// Повторный запрос для актуальной даты применяется
	resolver.block = nil
	require.NoError(t, m.RefreshSlots(context.Background(), d))
	assert.Len(t, d.Snapshot().Slots, domain.BaseSlotCount)
}

// --- оплата ---

func TestPay_EndToEnd(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{}
	m := newTestManager(&fakeResolver{slots: openSlots()}, store, sender)

	user := &domain.User{ID: "user-1", FirstName: "Alex", LastName: "Carter", Email: "alex@example.com"}
	d := m.Create(user)
	advanceToPayment(t, m, d)

	invoice, err := m.Pay(context.Background(), d)
	require.NoError(t, err)

	// Standard Clean, 3 часа по $45: 135 + 13% HST = 152.55, депозит 30%
	assert.InDelta(t, 152.55, invoice.TotalAmount, 1e-9)
	assert.InDelta(t, 45.765, invoice.DepositAmount, 1e-9)
	assert.InDelta(t, 106.785, invoice.RemainingAmount, 1e-9)
	assert.Equal(t, domain.InvoiceDepositPaid, invoice.Status)
	assert.Equal(t, "Alex Carter", invoice.ClientName)

	snap := d.Snapshot()
	assert.Equal(t, stepSuccess, snap.Step)
	assert.Equal(t, PaymentDepositPaid, snap.PaymentStatus)
	require.NotNil(t, snap.Invoice)

	require.Len(t, store.saved, 1)
	booking := store.saved[0]
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, domain.StatusUpcoming, booking.Status)
	assert.Equal(t, "10:00 AM", booking.TimeSlot)
	assert.InDelta(t, 152.55, booking.TotalCost, 1e-9)

	assert.Equal(t, []string{"alex@example.com"}, sender.sent)
}

func TestPay_GuestBookingNotPersisted(t *testing.T) {
	store := &fakeStore{}
	m := newTestManager(&fakeResolver{slots: openSlots()}, store, nil)

	d := m.Create(nil)
	advanceToPayment(t, m, d)

	_, err := m.Pay(context.Background(), d)
	require.NoError(t, err)
	assert.Empty(t, store.saved)
	assert.Equal(t, stepSuccess, d.Snapshot().Step)
}

func TestPay_DoublePayRejected(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)
	advanceToPayment(t, m, d)

	_, err := m.Pay(context.Background(), d)
	require.NoError(t, err)

	_, err = m.Pay(context.Background(), d)
	assert.ErrorIs(t, err, ErrNotAtPaymentStep)
}

func TestPay_RequiresPaymentStep(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)

	_, err := m.Pay(context.Background(), d)
	assert.ErrorIs(t, err, ErrNotAtPaymentStep)
}

func TestPay_StoreFailureDoesNotFailPayment(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	m := newTestManager(&fakeResolver{slots: openSlots()}, store, nil)

	d := m.Create(&domain.User{ID: "user-1", FirstName: "Alex", LastName: "Carter"})
	advanceToPayment(t, m, d)

	invoice, err := m.Pay(context.Background(), d)
	require.NoError(t, err)
	assert.NotNil(t, invoice)
	assert.Equal(t, stepSuccess, d.Snapshot().Step)
}

// --- навигация ---

func TestBack_Bounds(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)

	assert.ErrorIs(t, d.Back(), ErrAtFirstStep)

	require.NoError(t, d.SelectService(domain.ServiceStandard))
	require.NoError(t, d.Next())
	require.NoError(t, d.Back())
	assert.Equal(t, stepService, d.Snapshot().Step)
}

func TestTerminalStep_NoTransitions(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)
	advanceToPayment(t, m, d)

	_, err := m.Pay(context.Background(), d)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Next(), ErrTerminalStep)
	assert.ErrorIs(t, d.Back(), ErrTerminalStep)
}

func TestManager_Get(t *testing.T) {
	m := newTestManager(&fakeResolver{slots: openSlots()}, &fakeStore{}, nil)
	d := m.Create(nil)

	found, err := m.Get(d.ID())
	require.NoError(t, err)
	assert.Same(t, d, found)

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
