package applicant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/pkg/psqlbuilder"
)

// Repository репозиторий заявок соискателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, applicant *domain.Applicant) error {
	query, args, err := psqlbuilder.Insert("applicants").
		Columns(
			"id",
			"full_name",
			"email",
			"phone",
			"position",
			"experience",
			"about",
		).
		Values(
			applicant.ID,
			applicant.FullName,
			applicant.Email,
			applicant.Phone,
			applicant.Position,
			applicant.Experience,
			applicant.About,
		).
		Suffix("RETURNING submitted_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var submittedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&submittedAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	applicant.SubmittedAt = submittedAt.Time
	return nil
}
