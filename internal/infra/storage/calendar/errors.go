package calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

var (
	// ErrEventConflict возвращается при вставке события с уже существующим ID
	ErrEventConflict = fmt.Errorf("calendar.repository: %w", domain.ErrEventConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")

	// ErrInvalidProperties возвращается при ошибке сериализации private properties
	ErrInvalidProperties = errors.New("calendar.repository: invalid private properties")
)
