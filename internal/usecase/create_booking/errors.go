package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (пустое имя, контакт, слот)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidSlotFormat возвращается, когда время слота не удалось распознать
	ErrInvalidSlotFormat = errors.New("create_booking: invalid slot format")

	// ErrNonWorkingDay возвращается, когда слот приходится на нерабочий день
	ErrNonWorkingDay = errors.New("create_booking: slot is on a non-working day")

	// ErrOutOfHours возвращается, когда слот целиком не помещается в рабочее время
	ErrOutOfHours = errors.New("create_booking: slot is out of working hours")

	// ErrTooLateToBook возвращается, когда слот уже начался или до него меньше минимального запаса
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotConflict возвращается, когда слот пересекается с занятым интервалом на момент проверки
	ErrSlotConflict = errors.New("create_booking: slot is already taken")

	// ErrDuplicateBooking возвращается, когда календарь отклонил событие с тем же ID
	// (параллельный запрос успел записать ту же услугу на то же время)
	ErrDuplicateBooking = errors.New("create_booking: duplicate booking")

	// ErrBookingInProgress возвращается, когда день заблокирован другим запросом на запись
	ErrBookingInProgress = errors.New("create_booking: another booking for this day is in progress")

	// ErrGateway возвращается при ошибках обращения к календарю
	ErrGateway = errors.New("create_booking: calendar gateway error")
)
