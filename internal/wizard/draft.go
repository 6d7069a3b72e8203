package wizard

import (
	"sync"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/estimate"
)

// Шаги мастера бронирования. Шаг 6 - терминальный.
const (
	stepService  = 1 // выбор услуги
	stepDuration = 2 // длительность / счетчики помещений
	stepSchedule = 3 // дата и слот
	stepDetails  = 4 // контактные данные
	stepPayment  = 5 // оплата депозита
	stepSuccess  = 6 // подтверждение
)

// PaymentStatus статус оплаты черновика
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentFullyPaid   PaymentStatus = "fully_paid"
)

// ContactDetails контактные поля клиента
type ContactDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Notes     string
}

// Draft рабочее состояние одного прохода мастера.
// Каждый поток бронирования владеет собственным черновиком; состояние не
// разделяется между экземплярами мастера.
type Draft struct {
	mu sync.Mutex

	id   string
	user *domain.User // пользователь сессии на момент создания, может быть nil

	step    int
	service *domain.ServiceOffering
	// Единственное поле длительности с двумя писателями: пересчетом по
	// счетчикам помещений и ручным вводом. Последняя запись побеждает.
	hours    float64
	date     *time.Time
	timeSlot string

	residential domain.RoomTally
	office      domain.RoomTally

	contact       ContactDetails
	paymentStatus PaymentStatus
	invoice       *domain.Invoice

	// Текущая выдача слотов и защита от устаревших ответов резолвера
	slots        []domain.TimeSlot
	slotsLoading bool
	slotGen      uint64

	paying bool
}

// Snapshot консистентная копия состояния черновика для чтения
type Snapshot struct {
	ID            string
	UserID        string
	Step          int
	Service       *domain.ServiceOffering
	Hours         float64
	Date          *time.Time
	TimeSlot      string
	Residential   domain.RoomTally
	Office        domain.RoomTally
	Contact       ContactDetails
	AddressError  string
	PaymentStatus PaymentStatus
	Quote         estimate.Quote
	Slots         []domain.TimeSlot
	SlotsLoading  bool
	Invoice       *domain.Invoice
}

// ID возвращает идентификатор черновика
func (d *Draft) ID() string {
	return d.id
}

// Snapshot возвращает копию состояния
func (d *Draft) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := Snapshot{
		ID:            d.id,
		Step:          d.step,
		Service:       d.service,
		Hours:         d.hours,
		TimeSlot:      d.timeSlot,
		Residential:   d.residential.Clone(),
		Office:        d.office.Clone(),
		Contact:       d.contact,
		AddressError:  AddressError(d.contact.Address),
		PaymentStatus: d.paymentStatus,
		Slots:         append([]domain.TimeSlot(nil), d.slots...),
		SlotsLoading:  d.slotsLoading,
		Invoice:       d.invoice,
	}
	if d.user != nil {
		snap.UserID = d.user.ID
	}
	if d.date != nil {
		dateCopy := *d.date
		snap.Date = &dateCopy
	}
	if d.service != nil {
		snap.Quote = estimate.NewQuote(d.service.HourlyRate, d.hours)
	}
	return snap
}

// SelectService выбирает услугу из каталога
// Сбрасывает счетчики помещений к значениям по умолчанию и засевает
// длительность рекомендованными часами услуги
func (d *Draft) SelectService(id domain.ServiceType) error {
	offering := domain.FindOffering(id)
	if offering == nil {
		return ErrUnknownService
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.service = offering
	d.hours = offering.RecommendedHours
	d.residential = domain.DefaultResidentialTally()
	d.office = domain.DefaultOfficeTally()
	d.invalidateSlotsLocked()
	return nil
}

// AdjustRoom изменяет счетчик помещений на delta (с ограничением нулем снизу)
// и пересчитывает длительность через эстиматор - пересчет перезаписывает поле
// длительности (включая ручной ввод)
func (d *Draft) AdjustRoom(category domain.RoomCategory, delta int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.service == nil {
		return ErrNoServiceSelected
	}

	tally := d.residential
	if d.service.ID.IsOffice() {
		tally = d.office
	}
	tally.Adjust(category, delta)

	d.hours = estimate.RecommendedHours(tally, d.service.ID)
	d.invalidateSlotsLocked()
	return nil
}

// SetHours задает длительность вручную: шаг 0.5 часа, границы [2, 10]
func (d *Draft) SetHours(hours float64) error {
	if hours < domain.MinBookingHours || hours > domain.MaxBookingHours {
		return ErrInvalidHours
	}
	// Допустимы только значения с шагом в полчаса
	if hours*2 != float64(int(hours*2)) {
		return ErrInvalidHours
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.hours = hours
	d.invalidateSlotsLocked()
	return nil
}

// SetDate выбирает дату. Ранее выбранный слот сбрасывается: смена даты
// обесценивает выбор, резолвер нужно опросить заново.
func (d *Draft) SetDate(date time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	d.date = &day
	d.timeSlot = ""
	d.invalidateSlotsLocked()
}

// SelectSlot выбирает слот из текущей выдачи по подписи
func (d *Draft) SelectSlot(label string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.slotsLoading {
		return ErrSlotsLoading
	}
	for _, slot := range d.slots {
		if slot.Label == label {
			if !slot.Available {
				return ErrSlotUnavailable
			}
			d.timeSlot = label
			return nil
		}
	}
	return ErrSlotNotOffered
}

// SetContact обновляет контактные поля клиента
func (d *Draft) SetContact(contact ContactDetails) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contact = contact
}

// Next переходит на следующий шаг, если гейт текущего шага пройден
// С шага оплаты вперед ведет только само действие оплаты
func (d *Draft) Next() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.step >= stepSuccess {
		return ErrTerminalStep
	}
	if d.step == stepPayment {
		return ErrNotAtPaymentStep
	}
	if err := d.checkGate(d.step); err != nil {
		return err
	}
	d.step++
	return nil
}

// Back переходит на предыдущий шаг
func (d *Draft) Back() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.step == stepService {
		return ErrAtFirstStep
	}
	if d.step >= stepSuccess {
		return ErrTerminalStep
	}
	d.step--
	return nil
}

// invalidateSlotsLocked сбрасывает выдачу слотов при смене даты/длительности:
// устаревшие слоты не показываются, ответы резолвера со старым поколением
// отбрасываются. Вызывается под мьютексом.
func (d *Draft) invalidateSlotsLocked() {
	d.slots = nil
	d.slotGen++
}

// beginSlotLoad снимает снапшот параметров запроса слотов
// Возвращает ok=false, если дата еще не выбрана
func (d *Draft) beginSlotLoad() (gen uint64, date time.Time, hours float64, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.date == nil {
		return 0, time.Time{}, 0, false
	}
	d.slotsLoading = true
	return d.slotGen, *d.date, d.hours, true
}

// applySlots принимает ответ резолвера, если поколение запроса актуально
// Устаревший ответ (дата или длительность сменились в полете) отбрасывается
func (d *Draft) applySlots(gen uint64, slots []domain.TimeSlot) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.slotGen {
		return false
	}
	d.slots = slots
	d.slotsLoading = false
	return true
}
