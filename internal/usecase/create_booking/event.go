package create_booking

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

const (
	eventIDPrefix = "booking"
	eventHashLen  = 24
)

// BuildBookingKey ключ корреляции бронирования, хранится в private properties события
func BuildBookingKey(serviceID, startISO string) string {
	return serviceID + "-" + startISO
}

// BuildEventID детерминированный ID события: одна услуга и одно начало дают один ID
// Только символы base32hex (a-v, 0-9), которые Google Calendar принимает в ID события
func BuildEventID(serviceID, startISO string) string {
	sum := sha256.Sum256([]byte(BuildBookingKey(serviceID, startISO)))
	return eventIDPrefix + hex.EncodeToString(sum[:])[:eventHashLen]
}

func buildSummary(service domain.ServiceDefinition, booker domain.Booker) string {
	return fmt.Sprintf("%s — %s", service.Title, booker.Name)
}

func buildDescription(service domain.ServiceDefinition, booker domain.Booker) string {
	lines := []string{
		"Контакт: " + booker.Contact,
		"Услуга: " + service.Title,
		fmt.Sprintf("Длительность: %d минут", service.DurationMinutes),
		"Стоимость: " + service.Price,
	}
	if booker.HasComment() {
		lines = append(lines, "Комментарий: "+booker.Comment)
	}
	return strings.Join(lines, "\n")
}
