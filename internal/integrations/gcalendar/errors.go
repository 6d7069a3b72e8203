package gcalendar

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API-ключ или ID календаря
	// Вызывающий трактует это как недоступность источника (переход на симуляцию)
	ErrNotConfigured = errors.New("gcalendar client: api key or calendar id is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gcalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе календаря
	ErrInvalidResponse = errors.New("gcalendar client: invalid response")
)
