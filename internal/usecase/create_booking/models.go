package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID string `validate:"required,max=64"`    // ID услуги из каталога
	SlotStart string `validate:"required,max=64"`    // Начало слота, ISO-8601 со смещением
	Name      string `validate:"required,max=120"`   // Имя клиента
	Contact   string `validate:"required,max=200"`   // Телефон, email или Telegram
	Comment   string `validate:"omitempty,max=1000"` // Комментарий (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	EventID   string    // Детерминированный ID события в календаре
	ServiceID string    // ID услуги
	Start     time.Time // Начало в часовом поясе расписания
	End       time.Time // Конец (начало + длительность услуги)
}
