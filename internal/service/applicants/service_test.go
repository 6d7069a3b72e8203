package applicants

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/applicants/models"
)

type fakeRepo struct {
	created []*domain.Applicant
}

func (r *fakeRepo) Create(_ context.Context, applicant *domain.Applicant) error {
	applicant.SubmittedAt = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	r.created = append(r.created, applicant)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *models.SubmitApplicationRequest {
	return &models.SubmitApplicationRequest{
		FullName:   "Jordan Lee",
		Email:      "jordan@example.com",
		Phone:      "4165550123",
		Position:   "Cleaner",
		Experience: "2-3 years",
		About:      "Detail oriented, own transport.",
	}
}

func TestSubmit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2026-08-29T12:00:00Z", resp.SubmittedAt)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Cleaner", repo.created[0].Position)
}

func TestSubmit_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	req := validRequest()
	req.Email = "nope"
	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Position = ""
	_, err = svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
