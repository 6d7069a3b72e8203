package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	bookingRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/booking"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/bookings/models"
)

// Service сервис для работы с историей бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя,
// сгруппированную на предстоящие и прошедшие.
// Группировка зависит только от текущей даты и хранимого статуса,
// само хранилище при чтении не изменяется.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingHistoryResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", req.UserID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, nil)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now()
	resp := models.GroupBookings(bookings, today)

	s.logger.Info("GetUserBookings: fetched %d upcoming and %d past bookings for user=%s",
		len(resp.Upcoming), len(resp.Past), req.UserID)
	return resp, nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование и только пока оно
// в статусе upcoming. Повторная отмена отклоняется.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}
