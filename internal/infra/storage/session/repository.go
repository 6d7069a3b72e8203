package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/pkg/psqlbuilder"
)

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую сессию
func (r *Repository) Create(ctx context.Context, session *domain.Session) error {
	query, args, err := psqlbuilder.Insert("sessions").
		Columns("token", "user_id", "expires_at").
		Values(session.Token, session.UserID, session.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	return nil
}

// GetByToken получает сессию по токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select("token", "user_id", "expires_at", "created_at").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var session domain.Session
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan session: %v", ErrScanRow, err)
	}

	session.CreatedAt = createdAt.Time
	return &session, nil
}

// Delete удаляет сессию
func (r *Repository) Delete(ctx context.Context, token string) error {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
