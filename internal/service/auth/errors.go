package auth

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации с уже занятым email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized возвращается для несуществующей или истекшей сессии
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
