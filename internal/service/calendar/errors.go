package calendar

import "errors"

var (
	// ErrEventConflict возвращается, когда событие с таким ID уже существует
	ErrEventConflict = errors.New("calendar service: event already exists")

	// ErrGateway возвращается при ошибках обращения к календарю (сеть, авторизация, квоты)
	ErrGateway = errors.New("calendar service: gateway error")
)
