package wizard

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("wizard: draft not found")

	// ErrUnknownService возвращается при выборе услуги вне каталога
	ErrUnknownService = errors.New("wizard: unknown service offering")

	// ErrNoServiceSelected возвращается для операций, требующих выбранной услуги
	ErrNoServiceSelected = errors.New("wizard: no service selected")

	// ErrInvalidHours возвращается при длительности вне [2, 10] или не кратной 0.5
	ErrInvalidHours = errors.New("wizard: invalid duration")

	// ErrSlotsLoading возвращается при попытке выбрать слот во время загрузки
	ErrSlotsLoading = errors.New("wizard: slots are loading")

	// ErrSlotNotOffered возвращается, когда слот не входит в текущую выдачу
	ErrSlotNotOffered = errors.New("wizard: slot is not offered for the selected date")

	// ErrSlotUnavailable возвращается при выборе занятого слота
	ErrSlotUnavailable = errors.New("wizard: slot is not available")

	// ErrStepIncomplete возвращается, когда гейт текущего шага не пройден
	ErrStepIncomplete = errors.New("wizard: step requirements are not met")

	// ErrAtFirstStep возвращается при попытке шагнуть назад с первого шага
	ErrAtFirstStep = errors.New("wizard: already at the first step")

	// ErrTerminalStep возвращается для переходов из терминального шага
	ErrTerminalStep = errors.New("wizard: booking flow is complete")

	// ErrNotAtPaymentStep возвращается, когда оплата запущена не с шага оплаты
	ErrNotAtPaymentStep = errors.New("wizard: not at the payment step")

	// ErrPaymentInFlight возвращается при повторном запуске оплаты
	// Ровно одна попытка оплаты может быть в полете на один черновик
	ErrPaymentInFlight = errors.New("wizard: payment is already in flight")

	// ErrAlreadyPaid возвращается после успешной оплаты депозита
	ErrAlreadyPaid = errors.New("wizard: deposit is already paid")
)
