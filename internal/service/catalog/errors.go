package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrDuplicateService возвращается, когда в каталоге повторяется идентификатор услуги
	ErrDuplicateService = errors.New("catalog: duplicate service id")

	// ErrInvalidService возвращается для услуги без id, названия или с некорректной длительностью
	ErrInvalidService = errors.New("catalog: invalid service definition")
)
