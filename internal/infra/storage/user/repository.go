package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"id",
			"first_name",
			"last_name",
			"email",
			"phone",
			"address",
			"password_hash",
		).
		Values(
			user.ID,
			user.FirstName,
			user.LastName,
			user.Email,
			user.Phone,
			user.Address,
			user.PasswordHash,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	return nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"email",
		"phone",
		"address",
		"password_hash",
		"created_at",
	).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.User
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.Address,
		&user.PasswordHash,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan user: %v", ErrScanRow, err)
	}

	user.CreatedAt = createdAt.Time
	return &user, nil
}
