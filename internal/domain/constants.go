package domain

// Default booking configuration values
const (
	DefaultTimeZone            = "Europe/Moscow"
	DefaultDayStart            = "10:00"
	DefaultDayEnd              = "18:00"
	DefaultSlotIntervalMinutes = 30
	DefaultMinNoticeMinutes    = 0
)

// DefaultWorkingDays Пн–Пт (1 = понедельник, 7 = воскресенье)
var DefaultWorkingDays = []int{1, 2, 3, 4, 5}

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxSlotIntervalMinutes    = 240
	MaxMinNoticeMinutes       = 10080 // 1 week
	MaxNameLength             = 120
	MaxContactLength          = 200
	MaxCommentLength          = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// SlotTimeFormat ISO-8601 с миллисекундами и смещением: 2024-11-20T10:00:00.000+03:00
	SlotTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
