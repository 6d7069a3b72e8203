package models

import (
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос на получение истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string `json:"userId"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID string `json:"userId"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string    `json:"id"`
	ServiceType  string    `json:"serviceType"`
	ServiceTitle string    `json:"serviceTitle"`
	Date         string    `json:"date"` // "2026-09-05"
	TimeSlot     string    `json:"timeSlot"`
	Hours        float64   `json:"hours"`
	TotalCost    float64   `json:"totalCost"`
	Address      string    `json:"address"`
	Status       string    `json:"status"`
	CanCancel    bool      `json:"canCancel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingHistoryResponse история бронирований, сгруппированная для отображения.
// Группировка вычисляется на чтении: хранимый статус не меняется, когда дата
// бронирования проходит.
type BookingHistoryResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		ServiceType:  string(b.ServiceType),
		ServiceTitle: b.ServiceTitle,
		Date:         b.Date.Format(domain.DateFormat),
		TimeSlot:     b.TimeSlot,
		Hours:        b.Hours,
		TotalCost:    b.TotalCost,
		Address:      b.Address,
		Status:       string(b.Status),
		CanCancel:    b.CanBeCancelled(),
		CreatedAt:    b.CreatedAt,
	}
}

// GroupBookings раскладывает бронирования на предстоящие и прошедшие
// относительно today
func GroupBookings(bookings []*domain.Booking, today time.Time) *BookingHistoryResponse {
	resp := &BookingHistoryResponse{
		Upcoming: []BookingResponse{},
		Past:     []BookingResponse{},
	}

	for _, booking := range bookings {
		dto := FromDomainBooking(booking)
		if dto == nil {
			continue
		}
		if booking.IsUpcomingAt(today) {
			resp.Upcoming = append(resp.Upcoming, *dto)
		} else {
			resp.Past = append(resp.Past, *dto)
		}
	}

	return resp
}
