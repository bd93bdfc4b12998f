package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string // ID услуги из каталога
	Date      string // Календарный день YYYY-MM-DD
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      string      // Нормализованный день YYYY-MM-DD
	ServiceID string      // ID услуги
	TimeZone  string      // Часовой пояс расписания
	Slots     []time.Time // Начала свободных слотов по возрастанию
}
