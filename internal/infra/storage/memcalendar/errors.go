package memcalendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

var (
	// ErrEventConflict возвращается при вставке события с уже существующим ID
	ErrEventConflict = fmt.Errorf("memcalendar: %w", domain.ErrEventConflict)

	// ErrInvalidEvent возвращается для события без ID или с пустым интервалом
	ErrInvalidEvent = errors.New("memcalendar: invalid event")
)
