package domain

import "time"

// BookingStatus represents the stored status of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a paid, persisted booking
type Booking struct {
	ID           string
	UserID       string
	ServiceType  ServiceType
	ServiceTitle string
	Date         time.Time // calendar day of the appointment
	TimeSlot     string    // slot label, e.g. "09:00 AM"
	Hours        float64
	TotalCost    float64
	Address      string
	Status       BookingStatus
	CreatedAt    time.Time
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusUpcoming
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsUpcomingAt classifies the booking for display at the given day.
// Cancelled and completed bookings always read as past. The stored status is
// never mutated by this classification - a date-elapsed booking keeps its
// stored "upcoming" status and only displays as past.
func (b *Booking) IsUpcomingAt(today time.Time) bool {
	if b.Status == StatusCancelled || b.Status == StatusCompleted {
		return false
	}
	bookingDay := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, b.Date.Location())
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return !bookingDay.Before(todayDay)
}
