package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ConsultBooking/internal/domain"
)

// Драйверы хранилища календаря
const (
	CalendarDriverGoogle   = "google"
	CalendarDriverPostgres = "postgres"
	CalendarDriverMemory   = "memory"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Lock      LockConfig      `toml:"lock"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Services  []ServiceConfig `toml:"services"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig рабочее расписание и правила записи
type BookingConfig struct {
	TimeZone            string `toml:"timezone"`
	WorkingDays         []int  `toml:"working_days"` // 1 = Пн ... 7 = Вс
	DayStart            string `toml:"day_start"`    // HH:MM
	DayEnd              string `toml:"day_end"`      // HH:MM
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
	MinNoticeMinutes    int    `toml:"min_notice_minutes"`
	RejectPast          bool   `toml:"reject_past"` // не показывать и не принимать прошедшие слоты
}

type CalendarConfig struct {
	Driver         string       `toml:"driver"` // google | postgres | memory
	CalendarID     string       `toml:"calendar_id"`
	TimeoutSeconds int          `toml:"timeout_seconds"`
	Google         GoogleConfig `toml:"google"`
}

// GoogleConfig учетные данные сервисного аккаунта Google
type GoogleConfig struct {
	ServiceAccountEmail string `toml:"service_account_email"`
	PrivateKey          string `toml:"private_key"`
	CredentialsFile     string `toml:"credentials_file"` // альтернатива email + private_key
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LockConfig блокировка дня на время проверки и записи слота (опционально)
type LockConfig struct {
	Enabled    bool   `toml:"enabled"`
	TTLSeconds int    `toml:"ttl_seconds"`
	KeyPrefix  string `toml:"key_prefix"`
}

type RateLimitConfig struct {
	Enabled       bool `toml:"enabled"`
	Requests      int  `toml:"requests"`
	WindowSeconds int  `toml:"window_seconds"`
}

// ServiceConfig описание услуги каталога
type ServiceConfig struct {
	ID              string `toml:"id"`
	Title           string `toml:"title"`
	DurationMinutes int    `toml:"duration_minutes"`
	Price           string `toml:"price"`
	Description     string `toml:"description"`
}

// Load читает TOML файл, подгружает .env (если есть) и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен - в проде переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "consult-booking",
		},
		Booking: BookingConfig{
			TimeZone:            domain.DefaultTimeZone,
			WorkingDays:         append([]int(nil), domain.DefaultWorkingDays...),
			DayStart:            domain.DefaultDayStart,
			DayEnd:              domain.DefaultDayEnd,
			SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
			MinNoticeMinutes:    domain.DefaultMinNoticeMinutes,
		},
		Calendar: CalendarConfig{
			Driver:         CalendarDriverGoogle,
			TimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Lock: LockConfig{
			TTLSeconds: 15,
			KeyPrefix:  "booking:lock",
		},
		RateLimit: RateLimitConfig{
			Requests:      10,
			WindowSeconds: 60,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BOOKING_TZ"); v != "" {
		c.Booking.TimeZone = v
	}
	if v := os.Getenv("GOOGLE_CALENDAR_ID"); v != "" {
		c.Calendar.CalendarID = v
	}
	if v := os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"); v != "" {
		c.Calendar.Google.ServiceAccountEmail = v
	}
	if v := os.Getenv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY"); v != "" {
		c.Calendar.Google.PrivateKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}

	// Ключ из переменной окружения обычно приходит с экранированными переводами строк
	c.Calendar.Google.PrivateKey = strings.ReplaceAll(c.Calendar.Google.PrivateKey, `\n`, "\n")
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if _, err := c.Booking.Schedule(); err != nil {
		return err
	}

	switch c.Calendar.Driver {
	case CalendarDriverGoogle:
		if c.Calendar.CalendarID == "" {
			return fmt.Errorf("%w: calendar.calendar_id is required for google driver", ErrInvalidConfig)
		}
		g := c.Calendar.Google
		if g.CredentialsFile == "" && (g.ServiceAccountEmail == "" || g.PrivateKey == "") {
			return fmt.Errorf("%w: google service account credentials are required", ErrInvalidConfig)
		}
	case CalendarDriverPostgres, CalendarDriverMemory:
	default:
		return fmt.Errorf("%w: unknown calendar driver %q", ErrInvalidConfig, c.Calendar.Driver)
	}

	if c.Calendar.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: calendar.timeout_seconds must be positive", ErrInvalidConfig)
	}

	if c.Lock.Enabled && c.Lock.TTLSeconds <= 0 {
		return fmt.Errorf("%w: lock.ttl_seconds must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0) {
		return fmt.Errorf("%w: rate_limit.requests and rate_limit.window_seconds must be positive", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Services))
	for i, s := range c.Services {
		if s.ID == "" || s.Title == "" {
			return fmt.Errorf("%w: services[%d]: id and title are required", ErrInvalidConfig, i)
		}
		if s.DurationMinutes < domain.MinServiceDurationMinutes || s.DurationMinutes > domain.MaxServiceDurationMinutes {
			return fmt.Errorf("%w: services[%d]: duration_minutes must be between %d and %d",
				ErrInvalidConfig, i, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: services[%d]: duplicate id %q", ErrInvalidConfig, i, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}

// Schedule строит рабочее расписание из секции booking
func (b BookingConfig) Schedule() (domain.Schedule, error) {
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, b.TimeZone, err)
	}

	if len(b.WorkingDays) == 0 {
		return domain.Schedule{}, fmt.Errorf("%w: booking.working_days must not be empty", ErrInvalidConfig)
	}
	for _, d := range b.WorkingDays {
		if d < 1 || d > 7 {
			return domain.Schedule{}, fmt.Errorf("%w: booking.working_days: weekday %d out of range 1..7", ErrInvalidConfig, d)
		}
	}

	start, err := domain.ParseClockTime(b.DayStart)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: booking.day_start: %v", ErrInvalidConfig, err)
	}
	end, err := domain.ParseClockTime(b.DayEnd)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: booking.day_end: %v", ErrInvalidConfig, err)
	}
	if start.Minutes() >= end.Minutes() {
		return domain.Schedule{}, fmt.Errorf("%w: booking.day_start must be before booking.day_end", ErrInvalidConfig)
	}

	if b.SlotIntervalMinutes <= 0 || b.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return domain.Schedule{}, fmt.Errorf("%w: booking.slot_interval_minutes must be between 1 and %d",
			ErrInvalidConfig, domain.MaxSlotIntervalMinutes)
	}
	if b.MinNoticeMinutes < 0 || b.MinNoticeMinutes > domain.MaxMinNoticeMinutes {
		return domain.Schedule{}, fmt.Errorf("%w: booking.min_notice_minutes must be between 0 and %d",
			ErrInvalidConfig, domain.MaxMinNoticeMinutes)
	}

	return domain.Schedule{
		Location:     loc,
		WorkingDays:  append([]int(nil), b.WorkingDays...),
		DayStart:     start,
		DayEnd:       end,
		SlotInterval: time.Duration(b.SlotIntervalMinutes) * time.Minute,
		MinNotice:    time.Duration(b.MinNoticeMinutes) * time.Minute,
		RejectPast:   b.RejectPast,
	}, nil
}

// ServiceDefinitions возвращает услуги из конфигурации
// Пустой список означает, что используется встроенный каталог
func (c *Config) ServiceDefinitions() []domain.ServiceDefinition {
	defs := make([]domain.ServiceDefinition, len(c.Services))
	for i, s := range c.Services {
		defs[i] = domain.ServiceDefinition{
			ID:              s.ID,
			Title:           s.Title,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Description:     s.Description,
		}
	}
	return defs
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
