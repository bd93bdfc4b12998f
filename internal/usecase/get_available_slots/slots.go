package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// candidateSlots генерирует начала слотов внутри рабочего окна с шагом step
// Слот [cursor, cursor+duration) целиком помещается в окно и начинается не раньше earliest
// Нулевой earliest не ограничивает начало слота
func candidateSlots(window domain.TimeInterval, duration, step time.Duration, earliest time.Time) []time.Time {
	candidates := make([]time.Time, 0)
	if duration <= 0 || step <= 0 {
		return candidates
	}

	for cursor := window.Start; !cursor.Add(duration).After(window.End); cursor = cursor.Add(step) {
		if cursor.Before(earliest) {
			continue
		}
		candidates = append(candidates, cursor)
	}

	return candidates
}

// freeSlots оставляет кандидатов, интервал которых не пересекается с занятыми
// Граница к границе (10:00-10:30 и 10:30-11:00) пересечением не считается
func freeSlots(candidates []time.Time, duration time.Duration, busy []domain.TimeInterval) []time.Time {
	free := make([]time.Time, 0, len(candidates))

	for _, start := range candidates {
		slot, err := domain.NewTimeInterval(start, start.Add(duration), start.Location())
		if err != nil {
			continue
		}
		if domain.OverlapsAny(busy, slot) {
			continue
		}
		free = append(free, start)
	}

	return free
}
