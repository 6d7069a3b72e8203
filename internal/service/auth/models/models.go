package models

import (
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,min=7,max=32"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response модели

// UserResponse публичные данные пользователя
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// AuthResponse ответ на регистрацию и вход
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain модель в DTO без чувствительных полей
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}
