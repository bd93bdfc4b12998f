package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate возвращается, когда дату не удалось распознать
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrGateway возвращается, когда не удалось получить занятость из календаря
	ErrGateway = errors.New("get_available_slots: calendar gateway error")
)
