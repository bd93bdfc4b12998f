package calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
	"github.com/m04kA/SMC-ConsultBooking/pkg/logger"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx, query)
	events, _ := args.Get(0).([]domain.CalendarEvent)
	return events, args.Error(1)
}

func (m *mockGateway) InsertEvent(ctx context.Context, event *domain.NewEvent) (*domain.CalendarEvent, error) {
	args := m.Called(ctx, event)
	created, _ := args.Get(0).(*domain.CalendarEvent)
	return created, args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveCalendarCall(operation, result string, seconds float64) {
	m.Called(operation, result, seconds)
}

func moscow(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return loc
}

func TestBusyIntervals_QueriesWholeDay(t *testing.T) {
	loc := moscow(t)
	gw := new(mockGateway)
	svc := NewService(gw, loc, nil, logger.NewNop())

	day := time.Date(2024, 11, 25, 13, 45, 0, 0, loc)
	expected := domain.EventQuery{
		TimeMin:  time.Date(2024, 11, 25, 0, 0, 0, 0, loc),
		TimeMax:  time.Date(2024, 11, 26, 0, 0, 0, 0, loc),
		TimeZone: "Europe/Moscow",
	}
	gw.On("ListEvents", mock.Anything, expected).Return([]domain.CalendarEvent{}, nil).Once()

	busy, err := svc.BusyIntervals(context.Background(), day)
	require.NoError(t, err)
	assert.Empty(t, busy)
	gw.AssertExpectations(t)
}

func TestBusyIntervals_MapsEvents(t *testing.T) {
	loc := moscow(t)
	gw := new(mockGateway)
	svc := NewService(gw, loc, nil, logger.NewNop())

	events := []domain.CalendarEvent{
		{
			ID:    "timed",
			Start: domain.EventTime{DateTime: time.Date(2024, 11, 25, 14, 0, 0, 0, loc)},
			End:   domain.EventTime{DateTime: time.Date(2024, 11, 25, 15, 0, 0, 0, loc)},
		},
		{
			ID:    "all-day",
			Start: domain.EventTime{Date: "2024-11-25"},
			End:   domain.EventTime{Date: "2024-11-26"},
		},
		{
			ID:     "cancelled",
			Status: domain.EventStatusCancelled,
			Start:  domain.EventTime{DateTime: time.Date(2024, 11, 25, 10, 0, 0, 0, loc)},
			End:    domain.EventTime{DateTime: time.Date(2024, 11, 25, 11, 0, 0, 0, loc)},
		},
		{
			ID:           "free",
			Transparency: domain.EventTransparencyTransparent,
			Start:        domain.EventTime{DateTime: time.Date(2024, 11, 25, 11, 0, 0, 0, loc)},
			End:          domain.EventTime{DateTime: time.Date(2024, 11, 25, 12, 0, 0, 0, loc)},
		},
		{
			ID:    "no-end",
			Start: domain.EventTime{DateTime: time.Date(2024, 11, 25, 12, 0, 0, 0, loc)},
		},
		{
			ID:    "degenerate",
			Start: domain.EventTime{DateTime: time.Date(2024, 11, 25, 16, 0, 0, 0, loc)},
			End:   domain.EventTime{DateTime: time.Date(2024, 11, 25, 16, 0, 0, 0, loc)},
		},
	}
	gw.On("ListEvents", mock.Anything, mock.Anything).Return(events, nil).Once()

	busy, err := svc.BusyIntervals(context.Background(), time.Date(2024, 11, 25, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, busy, 2)

	assert.True(t, busy[0].Start.Equal(time.Date(2024, 11, 25, 14, 0, 0, 0, loc)))
	assert.True(t, busy[0].End.Equal(time.Date(2024, 11, 25, 15, 0, 0, 0, loc)))

	assert.True(t, busy[1].Start.Equal(time.Date(2024, 11, 25, 0, 0, 0, 0, loc)))
	assert.True(t, busy[1].End.Equal(time.Date(2024, 11, 26, 0, 0, 0, 0, loc)))
}

func TestBusyIntervals_GatewayError(t *testing.T) {
	loc := moscow(t)
	gw := new(mockGateway)
	m := new(mockMetrics)
	svc := NewService(gw, loc, m, logger.NewNop())

	gw.On("ListEvents", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded")).Once()
	m.On("ObserveCalendarCall", operationListEvents, resultError, mock.AnythingOfType("float64")).Once()

	_, err := svc.BusyIntervals(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrGateway)
	m.AssertExpectations(t)
}

func TestInsertEvent(t *testing.T) {
	loc := moscow(t)
	event := &domain.NewEvent{
		ID:    "booking0123456789abcdef01234567",
		Start: time.Date(2024, 11, 25, 10, 0, 0, 0, loc),
		End:   time.Date(2024, 11, 25, 10, 30, 0, 0, loc),
	}

	tests := []struct {
		name       string
		gwErr      error
		wantErr    error
		wantResult string
	}{
		{name: "created", wantResult: resultOK},
		{name: "conflict", gwErr: fmt.Errorf("store: %w", domain.ErrEventConflict), wantErr: ErrEventConflict, wantResult: resultConflict},
		{name: "transport error", gwErr: errors.New("connection reset"), wantErr: ErrGateway, wantResult: resultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(mockGateway)
			m := new(mockMetrics)
			svc := NewService(gw, loc, m, logger.NewNop())

			if tt.gwErr != nil {
				gw.On("InsertEvent", mock.Anything, event).Return(nil, tt.gwErr).Once()
			} else {
				gw.On("InsertEvent", mock.Anything, event).Return(&domain.CalendarEvent{ID: event.ID}, nil).Once()
			}
			m.On("ObserveCalendarCall", operationInsertEvent, tt.wantResult, mock.AnythingOfType("float64")).Once()

			created, err := svc.InsertEvent(context.Background(), event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, event.ID, created.ID)
			}
			gw.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}
