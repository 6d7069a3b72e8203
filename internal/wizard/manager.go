package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	resolveSlots "github.com/dipeshpuri/CleanrCrew-Patched/internal/usecase/resolve_slots"
)

// Manager реестр активных черновиков и зависимости мастера
type Manager struct {
	drafts sync.Map // draft id -> *Draft

	resolver     SlotResolver
	store        BookingStore
	templater    EmailTemplater
	sender       EmailSender // nil, если отправка почты выключена
	timeProvider TimeProvider
	paymentDelay time.Duration
	logger       Logger
}

// NewManager создает новый экземпляр менеджера мастера
func NewManager(
	resolver SlotResolver,
	store BookingStore,
	templater EmailTemplater,
	sender EmailSender,
	paymentDelay time.Duration,
	logger Logger,
) *Manager {
	return &Manager{
		resolver:     resolver,
		store:        store,
		templater:    templater,
		sender:       sender,
		timeProvider: &RealTimeProvider{},
		paymentDelay: paymentDelay,
		logger:       logger,
	}
}

// Create заводит новый черновик
// Контактные поля засеваются данными пользователя сессии, если он есть
func (m *Manager) Create(user *domain.User) *Draft {
	draft := &Draft{
		id:            uuid.NewString(),
		user:          user,
		step:          stepService,
		hours:         3,
		residential:   domain.DefaultResidentialTally(),
		office:        domain.DefaultOfficeTally(),
		paymentStatus: PaymentPending,
	}

	userID := "guest"
	if user != nil {
		userID = user.ID
		draft.contact = ContactDetails{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
			Address:   user.Address,
		}
	}

	m.drafts.Store(draft.id, draft)
	m.logger.Info("Wizard: created draft id=%s, user=%s", draft.id, userID)
	return draft
}

// Get возвращает черновик по идентификатору
func (m *Manager) Get(id string) (*Draft, error) {
	value, ok := m.drafts.Load(id)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return value.(*Draft), nil
}

// RefreshSlots заново опрашивает резолвер для текущей даты и длительности.
// Выдача очищается сразу (SetDate/SetHours уже сбросили её), а ответ
// применяется только если за время запроса дата/длительность не менялись -
// защита от перезаписи состояния устаревшим ответом.
func (m *Manager) RefreshSlots(ctx context.Context, draft *Draft) error {
	gen, date, hours, ok := draft.beginSlotLoad()
	if !ok {
		// Дата не выбрана - нечего опрашивать
		return nil
	}

	resp, err := m.resolver.Execute(ctx, &resolveSlots.Request{Date: date, Hours: hours})
	if err != nil {
		// Резолвер падает только на некорректном входе; выдачу не трогаем
		m.logger.Error("Wizard: slot resolution failed for draft id=%s: %v", draft.id, err)
		return err
	}

	if !draft.applySlots(gen, resp.Slots) {
		m.logger.Info("Wizard: discarded stale slot response for draft id=%s (gen=%d)", draft.id, gen)
		return nil
	}

	m.logger.Info("Wizard: applied %d slots for draft id=%s, date=%s, duration=%dh",
		len(resp.Slots), draft.id, date.Format(domain.DateFormat), resp.DurationHours)
	return nil
}
