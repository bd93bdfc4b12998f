package get_booking_config

import "github.com/m04kA/SMC-ConsultBooking/internal/domain"

// BookingConfigResponse HTTP response model
type BookingConfigResponse struct {
	TimeZone            string `json:"timezone"`
	WorkingDays         []int  `json:"workingDays"` // 1 = понедельник, 7 = воскресенье
	DayStart            string `json:"dayStart"`    // "10:00"
	DayEnd              string `json:"dayEnd"`      // "18:00"
	SlotIntervalMinutes int    `json:"slotIntervalMinutes"`
	MinNoticeMinutes    int    `json:"minNoticeMinutes"`
	RejectPast          bool   `json:"rejectPast"`
}

// FromSchedule конвертирует расписание в HTTP response
func FromSchedule(s domain.Schedule) *BookingConfigResponse {
	days := make([]int, len(s.WorkingDays))
	copy(days, s.WorkingDays)

	return &BookingConfigResponse{
		TimeZone:            s.Location.String(),
		WorkingDays:         days,
		DayStart:            s.DayStart.String(),
		DayEnd:              s.DayEnd.String(),
		SlotIntervalMinutes: int(s.SlotInterval.Minutes()),
		MinNoticeMinutes:    int(s.MinNotice.Minutes()),
		RejectPast:          s.RejectPast,
	}
}
