package domain

// Money constants
const (
	// HSTRate фиксированная ставка налога (Онтарио)
	HSTRate = 0.13

	// DepositShare доля предоплаты от полной суммы
	DepositShare = 0.30

	// RemainderShare доля, оплачиваемая после уборки
	RemainderShare = 0.70
)

// Duration bounds for the wizard's duration control
const (
	MinBookingHours = 2.0
	MaxBookingHours = 10.0
	HoursStep       = 0.5
)

// Slot geometry: one candidate slot per whole hour, 08:00..16:00 inclusive
const (
	FirstSlotHour = 8
	LastSlotHour  = 16
	BaseSlotCount = LastSlotHour - FirstSlotHour + 1
)

// BookingBufferMinutes минимальный запас до начала слота при бронировании
// на сегодня - слоты, начинающиеся раньше, помечаются недоступными
const BookingBufferMinutes = 30

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	SlotLabelFormat = "03:04 PM"   // "08:00 AM"
)
