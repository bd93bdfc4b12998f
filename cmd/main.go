package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/SMC-ConsultBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ConsultBooking/internal/api/handlers/get_available_slots"
	getBookingConfigHandler "github.com/m04kA/SMC-ConsultBooking/internal/api/handlers/get_booking_config"
	listServicesHandler "github.com/m04kA/SMC-ConsultBooking/internal/api/handlers/list_services"
	"github.com/m04kA/SMC-ConsultBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultBooking/internal/config"
	"github.com/m04kA/SMC-ConsultBooking/internal/infra/locker"
	calendarRepo "github.com/m04kA/SMC-ConsultBooking/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-ConsultBooking/internal/infra/storage/memcalendar"
	"github.com/m04kA/SMC-ConsultBooking/internal/integrations/googlecalendar"
	calendarService "github.com/m04kA/SMC-ConsultBooking/internal/service/calendar"
	"github.com/m04kA/SMC-ConsultBooking/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-ConsultBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ConsultBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConsultBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultBooking/pkg/logger"
	"github.com/m04kA/SMC-ConsultBooking/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ConsultBooking...")
	log.Info("Configuration loaded from %s", configPath)

	schedule, err := cfg.Booking.Schedule()
	if err != nil {
		log.Fatal("Invalid booking schedule: %v", err)
	}
	log.Info("Booking schedule: timezone=%s, hours=%s-%s, slot_interval=%s, min_notice=%s",
		schedule.Location, schedule.DayStart, schedule.DayEnd, schedule.SlotInterval, schedule.MinNotice)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище календаря
	gateway, closeGateway, err := newCalendarGateway(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to initialize calendar gateway (driver=%s): %v", cfg.Calendar.Driver, err)
	}
	defer closeGateway()
	log.Info("Calendar gateway initialized (driver=%s)", cfg.Calendar.Driver)

	// Инициализируем сервисы
	var calendarMetrics calendarService.Metrics
	if metricsCollector != nil {
		calendarMetrics = metricsCollector
	}
	calendarSvc := calendarService.NewService(gateway, schedule.Location, calendarMetrics, log)

	catalogSvc, err := catalog.NewService(cfg.ServiceDefinitions(), log)
	if err != nil {
		log.Fatal("Failed to load service catalog: %v", err)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		calendarSvc,
		catalogSvc,
		schedule,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		calendarSvc,
		catalogSvc,
		schedule,
		log,
	)
	if metricsCollector != nil {
		createBookingUseCase.WithMetrics(metricsCollector)
	}

	// Блокировка дня в Redis (опционально)
	if cfg.Lock.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Блокировка работает в режиме fail-open, сервис стартует и без Redis
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		createBookingUseCase.WithDayLock(
			locker.New(redisClient, log),
			cfg.Lock.KeyPrefix,
			time.Duration(cfg.Lock.TTLSeconds)*time.Second,
		)
		log.Info("Day lock enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Lock.TTLSeconds)
	}

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookingConfig := getBookingConfigHandler.NewHandler(schedule, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на день
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Параметры расписания
	api.HandleFunc("/config", getBookingConfig.Handle).Methods(http.MethodGet)

	// Создание бронирования
	var createBookingRoute http.Handler = http.HandlerFunc(createBooking.Handle)
	if cfg.RateLimit.Enabled {
		createBookingRoute = middleware.RateLimitByIP(
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)(createBookingRoute)
		log.Info("Rate limit on POST /bookings: %d requests per %ds",
			cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}
	api.Handle("/bookings", createBookingRoute).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// newCalendarGateway создает хранилище событий по драйверу из конфигурации
// Возвращаемая функция освобождает ресурсы драйвера
func newCalendarGateway(
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (calendarService.Gateway, func(), error) {
	noop := func() {}

	switch cfg.Calendar.Driver {
	case config.CalendarDriverGoogle:
		ctx := context.Background()
		auth, err := googlecalendar.AuthOption(ctx, googlecalendar.Credentials{
			Email:           cfg.Calendar.Google.ServiceAccountEmail,
			PrivateKey:      cfg.Calendar.Google.PrivateKey,
			CredentialsFile: cfg.Calendar.Google.CredentialsFile,
		})
		if err != nil {
			return nil, noop, err
		}

		client, err := googlecalendar.NewClient(
			ctx,
			cfg.Calendar.CalendarID,
			time.Duration(cfg.Calendar.TimeoutSeconds)*time.Second,
			log,
			auth,
		)
		if err != nil {
			return nil, noop, err
		}
		return client, noop, nil

	case config.CalendarDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		closeDB := func() { _ = db.Close() }
		if metricsCollector != nil {
			wrapped := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
			return calendarRepo.NewRepository(wrapped, cfg.Calendar.CalendarID), closeDB, nil
		}
		return calendarRepo.NewRepository(db, cfg.Calendar.CalendarID), closeDB, nil

	case config.CalendarDriverMemory:
		log.Warn("Using in-memory calendar: bookings are lost on restart")
		return memcalendar.NewStore(), noop, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown calendar driver %q", config.ErrInvalidConfig, cfg.Calendar.Driver)
	}
}
