package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save создает новое бронирование
func (r *Repository) Save(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"service_type",
			"service_title",
			"booking_date",
			"time_slot",
			"hours",
			"total_cost",
			"address",
			"status",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.ServiceType,
			booking.ServiceTitle,
			booking.Date,
			booking.TimeSlot,
			booking.Hours,
			booking.TotalCost,
			booking.Address,
			booking.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"service_type",
		"service_title",
		"booking_date",
		"time_slot",
		"hours",
		"total_cost",
		"address",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ServiceType,
		&booking.ServiceTitle,
		&booking.Date,
		&booking.TimeSlot,
		&booking.Hours,
		&booking.TotalCost,
		&booking.Address,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"service_type",
		"service_title",
		"booking_date",
		"time_slot",
		"hours",
		"total_cost",
		"address",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, time_slot DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Busy возвращает занятые интервалы за период [from, to)
// Отмененные бронирования возвращаются с пометкой и не блокируют слоты
func (r *Repository) Busy(ctx context.Context, from, to time.Time) ([]domain.BusyInterval, error) {
	query, args, err := psqlbuilder.Select(
		"booking_date",
		"time_slot",
		"hours",
		"status",
	).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.Lt{"booking_date": to}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Busy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Busy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.BusyInterval, 0)
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(&booking.Date, &booking.TimeSlot, &booking.Hours, &booking.Status); err != nil {
			return nil, fmt.Errorf("%w: Busy - scan row: %v", ErrScanRow, err)
		}
		interval, ok := busyIntervalOf(&booking)
		if !ok {
			continue
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Busy - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// busyIntervalOf строит занятый интервал из строки бронирования
// Возвращает ok=false, если подпись слота не распознана
func busyIntervalOf(b *domain.Booking) (domain.BusyInterval, bool) {
	slotTime, err := time.Parse(domain.SlotLabelFormat, b.TimeSlot)
	if err != nil {
		return domain.BusyInterval{}, false
	}

	start := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(),
		slotTime.Hour(), slotTime.Minute(), 0, 0, b.Date.Location())
	end := start.Add(time.Duration(b.Hours * float64(time.Hour)))

	return domain.BusyInterval{
		Start:     start,
		End:       end,
		Cancelled: b.IsCancelled(),
	}, true
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ServiceType,
			&booking.ServiceTitle,
			&booking.Date,
			&booking.TimeSlot,
			&booking.Hours,
			&booking.TotalCost,
			&booking.Address,
			&booking.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
