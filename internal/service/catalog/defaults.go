package catalog

import "github.com/m04kA/SMC-ConsultBooking/internal/domain"

// DefaultServices встроенный каталог консультаций
// Используется, если в конфигурации не задана секция [[services]]
func DefaultServices() []domain.ServiceDefinition {
	return []domain.ServiceDefinition{
		{
			ID:              "bot-training",
			Title:           "⚡️ Обучение боту (для самоанализа)",
			DurationMinutes: 30,
			Price:           "2500 ₽",
			Description:     "Быстрое погружение в логику бота и работу с самоанализом.",
		},
		{
			ID:              "deep-session",
			Title:           "🧠 Глубокая сессия (мой анализ, вас)",
			DurationMinutes: 60,
			Price:           "11500 ₽",
			Description:     "Личный разбор с моими выводами и рекомендациями.",
		},
		{
			ID:              "vip-route",
			Title:           "🗺 Маршрут жизненного периода (VIP)",
			DurationMinutes: 120,
			Price:           "27000 ₽",
			Description:     "Большая стратегическая сессия с проработкой периода.",
		},
	}
}
