package models

import "github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"

// SubmitApplicationRequest заявка соискателя
type SubmitApplicationRequest struct {
	FullName   string `json:"fullName" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"required,min=7,max=32"`
	Position   string `json:"position" validate:"required,max=100"`
	Experience string `json:"experience" validate:"omitempty,max=100"`
	About      string `json:"about" validate:"omitempty,max=2000"`
}

// ApplicationResponse ответ на принятую заявку
type ApplicationResponse struct {
	ID          string `json:"id"`
	SubmittedAt string `json:"submittedAt"` // ISO 8601
}

// ToDomainApplicant конвертирует запрос в domain модель
func (r *SubmitApplicationRequest) ToDomainApplicant(id string) *domain.Applicant {
	return &domain.Applicant{
		ID:         id,
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Position:   r.Position,
		Experience: r.Experience,
		About:      r.About,
	}
}
