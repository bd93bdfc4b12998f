package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
	"github.com/m04kA/SMC-ConsultBooking/pkg/psqlbuilder"
)

const (
	tableEvents = "calendar_events"

	// pqUniqueViolation код ошибки PostgreSQL unique_violation
	pqUniqueViolation = "23505"
)

var eventColumns = []string{
	"id",
	"summary",
	"description",
	"start_at",
	"end_at",
	"all_day",
	"time_zone",
	"status",
	"transparency",
	"private_properties",
	"created_at",
}

// Repository календарь в PostgreSQL
// Все запросы ограничены одним calendar_id
type Repository struct {
	db         DBExecutor
	calendarID string
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor, calendarID string) *Repository {
	return &Repository{
		db:         db,
		calendarID: calendarID,
	}
}

// ListEvents получает события, пересекающие [TimeMin, TimeMax), по возрастанию начала
func (r *Repository) ListEvents(ctx context.Context, q domain.EventQuery) ([]domain.CalendarEvent, error) {
	query, args, err := psqlbuilder.Select(eventColumns...).
		From(tableEvents).
		Where(squirrel.Eq{"calendar_id": r.calendarID}).
		Where(squirrel.Lt{"start_at": q.TimeMax}).
		Where(squirrel.Gt{"end_at": q.TimeMin}).
		OrderBy("start_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]domain.CalendarEvent, 0)
	for rows.Next() {
		var (
			row      eventRow
			rawProps []byte
		)
		if err := rows.Scan(
			&row.ID,
			&row.Summary,
			&row.Description,
			&row.StartAt,
			&row.EndAt,
			&row.AllDay,
			&row.TimeZone,
			&row.Status,
			&row.Transparency,
			&rawProps,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListEvents - scan row: %v", ErrScanRow, err)
		}

		if len(rawProps) > 0 {
			if err := json.Unmarshal(rawProps, &row.PrivateProperties); err != nil {
				return nil, fmt.Errorf("%w: ListEvents - event %s: %v", ErrInvalidProperties, row.ID, err)
			}
		}

		events = append(events, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEvents - rows iteration: %v", ErrScanRow, err)
	}

	return events, nil
}

// InsertEvent вставляет событие с заданным ID
// Первичный ключ (calendar_id, id) делает повторную вставку конфликтом
func (r *Repository) InsertEvent(ctx context.Context, event *domain.NewEvent) (*domain.CalendarEvent, error) {
	props, err := json.Marshal(event.PrivateProperties)
	if err != nil {
		return nil, fmt.Errorf("%w: InsertEvent - marshal: %v", ErrInvalidProperties, err)
	}

	query, args, err := psqlbuilder.Insert(tableEvents).
		Columns(
			"calendar_id",
			"id",
			"summary",
			"description",
			"start_at",
			"end_at",
			"all_day",
			"time_zone",
			"status",
			"transparency",
			"private_properties",
		).
		Values(
			r.calendarID,
			event.ID,
			event.Summary,
			event.Description,
			event.Start,
			event.End,
			false,
			event.TimeZone,
			domain.EventStatusConfirmed,
			domain.EventTransparencyOpaque,
			props,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: InsertEvent - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt time.Time
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrEventConflict
		}
		return nil, fmt.Errorf("%w: InsertEvent - execute insert: %v", ErrExecQuery, err)
	}

	return &domain.CalendarEvent{
		ID:                event.ID,
		Summary:           event.Summary,
		Description:       event.Description,
		Start:             domain.EventTime{DateTime: event.Start},
		End:               domain.EventTime{DateTime: event.End},
		Status:            domain.EventStatusConfirmed,
		Transparency:      domain.EventTransparencyOpaque,
		PrivateProperties: event.PrivateProperties,
		CreatedAt:         createdAt,
	}, nil
}
