package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
	"github.com/m04kA/SMC-ConsultBooking/internal/service/catalog"
	"github.com/m04kA/SMC-ConsultBooking/pkg/logger"
)

type mockCalendar struct {
	mock.Mock
}

func (m *mockCalendar) BusyIntervals(ctx context.Context, day time.Time) ([]domain.TimeInterval, error) {
	args := m.Called(ctx, day)
	busy, _ := args.Get(0).([]domain.TimeInterval)
	return busy, args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func testSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	return domain.Schedule{
		Location:     loc,
		WorkingDays:  []int{1, 2, 3, 4, 5},
		DayStart:     domain.MustParseClockTime("10:00"),
		DayEnd:       domain.MustParseClockTime("18:00"),
		SlotInterval: 30 * time.Minute,
	}
}

func newTestUseCase(t *testing.T, cal CalendarService, now time.Time) *UseCase {
	t.Helper()

	cat, err := catalog.NewService(nil, logger.NewNop())
	require.NoError(t, err)

	uc := NewUseCase(cal, cat, testSchedule(t), logger.NewNop())
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func formatSlots(slots []time.Time) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Format(domain.TimeFormat)
	}
	return out
}

func TestExecute_EmptyCalendar(t *testing.T) {
	schedule := testSchedule(t)
	cal := new(mockCalendar)
	cal.On("BusyIntervals", mock.Anything, mock.Anything).Return([]domain.TimeInterval{}, nil).Once()

	uc := newTestUseCase(t, cal, time.Date(2024, 11, 20, 9, 0, 0, 0, schedule.Location))

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "bot-training", Date: "2024-11-25"})
	require.NoError(t, err)

	assert.Equal(t, "2024-11-25", resp.Date)
	assert.Equal(t, "Europe/Moscow", resp.TimeZone)
	assert.Equal(t, []string{
		"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	}, formatSlots(resp.Slots))
	assert.Equal(t, "2024-11-25T10:00:00.000+03:00", resp.Slots[0].Format(domain.SlotTimeFormat))
	cal.AssertExpectations(t)
}

func TestExecute_LongServiceAroundBusyInterval(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	busy, err := domain.NewTimeInterval(
		time.Date(2024, 11, 25, 14, 0, 0, 0, loc),
		time.Date(2024, 11, 25, 15, 0, 0, 0, loc),
		loc,
	)
	require.NoError(t, err)

	cal := new(mockCalendar)
	cal.On("BusyIntervals", mock.Anything, time.Date(2024, 11, 25, 0, 0, 0, 0, loc)).
		Return([]domain.TimeInterval{busy}, nil).Once()

	uc := newTestUseCase(t, cal, time.Date(2024, 11, 20, 9, 0, 0, 0, loc))

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "vip-route", Date: "2024-11-25"})
	require.NoError(t, err)

	slots := formatSlots(resp.Slots)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30", "12:00", "15:00", "15:30", "16:00"}, slots)
	assert.Contains(t, slots, "12:00")
	assert.NotContains(t, slots, "13:00")
	assert.Contains(t, slots, "16:00")
	assert.NotContains(t, slots, "16:30")
	cal.AssertExpectations(t)
}

func TestListAvailableSlots_NonWorkingDayIsEmpty(t *testing.T) {
	schedule := testSchedule(t)
	cal := new(mockCalendar)
	uc := newTestUseCase(t, cal, time.Date(2024, 11, 20, 9, 0, 0, 0, schedule.Location))

	cat, err := catalog.NewService(nil, logger.NewNop())
	require.NoError(t, err)

	for _, date := range []string{"2024-11-30", "2024-12-01"} {
		for _, service := range cat.List() {
			slots, err := uc.ListAvailableSlots(context.Background(), date, service)
			require.NoError(t, err)
			assert.Empty(t, slots, "service=%s date=%s", service.ID, date)
		}
	}
	cal.AssertNotCalled(t, "BusyIntervals", mock.Anything, mock.Anything)
}

func TestListAvailableSlots_WorkingWindowContainment(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	busy := []domain.TimeInterval{
		{Start: time.Date(2024, 11, 26, 11, 15, 0, 0, loc), End: time.Date(2024, 11, 26, 11, 45, 0, 0, loc), Location: loc},
		{Start: time.Date(2024, 11, 26, 16, 0, 0, 0, loc), End: time.Date(2024, 11, 26, 16, 30, 0, 0, loc), Location: loc},
	}
	cal := new(mockCalendar)
	cal.On("BusyIntervals", mock.Anything, mock.Anything).Return(busy, nil)

	uc := newTestUseCase(t, cal, time.Date(2024, 11, 20, 9, 0, 0, 0, loc))
	window, ok := schedule.WorkingWindow(time.Date(2024, 11, 26, 0, 0, 0, 0, loc))
	require.True(t, ok)

	cat, err := catalog.NewService(nil, logger.NewNop())
	require.NoError(t, err)

	for _, service := range cat.List() {
		slots, err := uc.ListAvailableSlots(context.Background(), "2024-11-26", service)
		require.NoError(t, err)
		require.NotEmpty(t, slots, service.ID)

		for i, start := range slots {
			end := start.Add(service.Duration())
			assert.False(t, start.Before(window.Start), "service=%s slot=%s", service.ID, start)
			assert.False(t, end.After(window.End), "service=%s slot=%s", service.ID, start)

			slot := domain.TimeInterval{Start: start, End: end}
			assert.False(t, domain.OverlapsAny(busy, slot), "service=%s slot=%s", service.ID, start)

			if i > 0 {
				assert.True(t, slots[i-1].Before(start))
			}
		}
	}
}

func TestListAvailableSlots_SkipsPastAndMinNotice(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	cal := new(mockCalendar)
	cal.On("BusyIntervals", mock.Anything, mock.Anything).Return([]domain.TimeInterval{}, nil)

	cat, err := catalog.NewService(nil, logger.NewNop())
	require.NoError(t, err)
	service, err := cat.GetByID("bot-training")
	require.NoError(t, err)

	uc := newTestUseCase(t, cal, time.Date(2024, 11, 25, 12, 10, 0, 0, loc))
	uc.schedule.RejectPast = true
	slots, err := uc.ListAvailableSlots(context.Background(), "2024-11-25", service)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "12:30", slots[0].Format(domain.TimeFormat))

	uc.schedule.MinNotice = time.Hour
	slots, err = uc.ListAvailableSlots(context.Background(), "2024-11-25", service)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "13:30", slots[0].Format(domain.TimeFormat))

	// день целиком в прошлом: календарь не запрашивается
	cal.Calls = nil
	slots, err = uc.ListAvailableSlots(context.Background(), "2024-11-22", service)
	require.NoError(t, err)
	assert.Empty(t, slots)
	cal.AssertNotCalled(t, "BusyIntervals", mock.Anything, mock.Anything)
}

func TestListAvailableSlots_PastDayWithDefaultSchedule(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	cal := new(mockCalendar)
	cal.On("BusyIntervals", mock.Anything, time.Date(2024, 11, 25, 0, 0, 0, 0, loc)).
		Return([]domain.TimeInterval{}, nil).Once()

	cat, err := catalog.NewService(nil, logger.NewNop())
	require.NoError(t, err)
	service, err := cat.GetByID("bot-training")
	require.NoError(t, err)

	// реальные часы: 2024-11-25 уже в прошлом, но без reject_past и min_notice слоты не отсекаются
	uc := NewUseCase(cal, cat, schedule, logger.NewNop())

	slots, err := uc.ListAvailableSlots(context.Background(), "2024-11-25", service)
	require.NoError(t, err)
	assert.Len(t, slots, 16)
	assert.Equal(t, "10:00", slots[0].Format(domain.TimeFormat))
	assert.Equal(t, "17:30", slots[15].Format(domain.TimeFormat))
	cal.AssertExpectations(t)
}

func TestListAvailableSlots_RejectPastWithRealClock(t *testing.T) {
	schedule := testSchedule(t)
	schedule.RejectPast = true

	cal := new(mockCalendar)
	cat, err := catalog.NewService(nil, logger.NewNop())
	require.NoError(t, err)
	service, err := cat.GetByID("bot-training")
	require.NoError(t, err)

	uc := NewUseCase(cal, cat, schedule, logger.NewNop())

	slots, err := uc.ListAvailableSlots(context.Background(), "2024-11-25", service)
	require.NoError(t, err)
	assert.Empty(t, slots)
	cal.AssertNotCalled(t, "BusyIntervals", mock.Anything, mock.Anything)
}

func TestListAvailableSlots_AcceptsTimestamp(t *testing.T) {
	schedule := testSchedule(t)
	loc := schedule.Location

	cal := new(mockCalendar)
	cal.On("BusyIntervals", mock.Anything, time.Date(2024, 11, 25, 0, 0, 0, 0, loc)).
		Return([]domain.TimeInterval{}, nil).Once()

	uc := newTestUseCase(t, cal, time.Date(2024, 11, 20, 9, 0, 0, 0, loc))

	// 22:30 UTC воскресенья это уже понедельник по Москве
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "deep-session", Date: "2024-11-24T22:30:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "2024-11-25", resp.Date)
	assert.Len(t, resp.Slots, 15)
	cal.AssertExpectations(t)
}

func TestExecute_Errors(t *testing.T) {
	schedule := testSchedule(t)
	now := time.Date(2024, 11, 20, 9, 0, 0, 0, schedule.Location)

	tests := []struct {
		name    string
		req     *Request
		gwErr   error
		wantErr error
	}{
		{name: "missing service", req: &Request{Date: "2024-11-25"}, wantErr: ErrInvalidInput},
		{name: "missing date", req: &Request{ServiceID: "bot-training"}, wantErr: ErrInvalidInput},
		{name: "unknown service", req: &Request{ServiceID: "massage", Date: "2024-11-25"}, wantErr: ErrServiceNotFound},
		{name: "bad date", req: &Request{ServiceID: "bot-training", Date: "25.11.2024"}, wantErr: ErrInvalidDate},
		{name: "gateway failure", req: &Request{ServiceID: "bot-training", Date: "2024-11-25"}, gwErr: errors.New("timeout"), wantErr: ErrGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := new(mockCalendar)
			if tt.gwErr != nil {
				cal.On("BusyIntervals", mock.Anything, mock.Anything).Return(nil, tt.gwErr).Once()
			}
			uc := newTestUseCase(t, cal, now)

			resp, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}
