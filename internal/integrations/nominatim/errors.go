package nominatim

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	// Все ошибки клиента - advisory: потребитель деградирует до ручного ввода
	ErrInternal = errors.New("nominatim client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе геокодера
	ErrInvalidResponse = errors.New("nominatim client: invalid response")
)
