package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	adminLoginHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/admin_login"
	createAppointmentHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/create_appointment"
	createBarberHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/create_barber"
	getAppointmentHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_appointment"
	getAppointmentStatsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_appointment_stats"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/list_appointments"
	listAvailabilityHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/list_availability"
	listBarbersHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/list_barbers"
	listBookingDatesHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/list_booking_dates"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/update_appointment_status"
	updateBarberHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/update_barber"
	upsertAvailabilityHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/upsert_availability"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/config"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barbersCache "github.com/m04kA/SMC-BarbershopService/internal/infra/cache/barbers"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/notify"
	adminRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/admin"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarbershopService/internal/locale"
	appointmentsService "github.com/m04kA/SMC-BarbershopService/internal/service/appointments"
	authService "github.com/m04kA/SMC-BarbershopService/internal/service/auth"
	availabilityService "github.com/m04kA/SMC-BarbershopService/internal/service/availability"
	barbersService "github.com/m04kA/SMC-BarbershopService/internal/service/barbers"
	createAppointmentUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
	listBookingDatesUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/list_booking_dates"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
	"github.com/m04kA/SMC-BarbershopService/pkg/metrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", envOrDefault("CONFIG_PATH", "config.toml"), "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-BarbershopService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка снимает метрики запросов, без коллектора просто проксирует
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	barberRepository := barberRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	adminRepository := adminRepo.NewRepository(wrappedDB)

	// Кэш активных барберов (опционально)
	var barberCache barbersService.Cache
	if cfg.Redis.Enabled {
		redisClient, err := barbersCache.NewClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, barber cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			barberCache = barbersCache.NewCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
			log.Info("Barber cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
	}

	// Локализация дат и писем
	locales, err := locale.Load(cfg.Booking.DefaultLocale)
	if err != nil {
		log.Fatal("Failed to load locales: %v", err)
	}
	log.Info("Locales loaded: %v (default=%s)", locales.Supported(), cfg.Booking.DefaultLocale)

	// Отправка подтверждений
	var confirmationMailer createAppointmentUC.Mailer
	if cfg.Mailer.Enabled {
		confirmationMailer = mailer.NewClient(
			cfg.Mailer.APIKey,
			cfg.Mailer.FromEmail,
			cfg.Mailer.FromName,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			locales,
			log,
		)
		log.Info("SendGrid mailer enabled (from=%s)", cfg.Mailer.FromEmail)
	} else {
		confirmationMailer = mailer.NewNoop(log)
		log.Info("Mailer disabled, confirmations are only logged")
	}

	// Уведомления панели администратора
	hub := notify.NewHub(cfg.Server.AllowedOrigins, log)

	window := domain.BookingWindow{
		MinDaysAhead: cfg.Booking.MinDaysAhead,
		HorizonDays:  cfg.Booking.HorizonDays,
	}

	// Инициализируем сервисы
	barberSvc := barbersService.NewService(barberRepository, barberCache, metricsCollector, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, barberRepository, txMgr, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, barberRepository, txMgr, hub, log)
	authSvc := authService.NewService(
		adminRepository,
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		barberRepository,
		availabilityRepository,
		appointmentRepository,
		window,
		cfg.Booking.SlotStepMinutes,
		metricsCollector,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		barberRepository,
		availabilityRepository,
		txMgr,
		confirmationMailer,
		hub,
		metricsCollector,
		window,
		cfg.Booking.SlotStepMinutes,
		log,
	)

	listBookingDatesUseCase := listBookingDatesUC.NewUseCase(locales, window, log)

	// Инициализируем handlers
	listBarbers := listBarbersHandler.NewHandler(barberSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listBookingDates := listBookingDatesHandler.NewHandler(listBookingDatesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointmentStats := getAppointmentStatsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	createBarber := createBarberHandler.NewHandler(barberSvc, log)
	updateBarber := updateBarberHandler.NewHandler(barberSvc, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	upsertAvailability := upsertAvailabilityHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверка живости
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := wrappedDB.PingContext(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log).
			WithTrustProxy(cfg.RateLimit.TrustProxy)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.0f req/min, burst=%d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Список активных барберов
	public.HandleFunc("/barbers", listBarbers.HandlePublic).Methods(http.MethodGet)

	// Свободные слоты барбера на дату
	public.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Даты, доступные для записи
	public.HandleFunc("/booking-dates", listBookingDates.Handle).Methods(http.MethodGet)

	// Создание записи
	public.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Вход администратора
	public.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/stats", getAppointmentStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/stream", hub.ServeWS).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Барберы ---
	admin.HandleFunc("/barbers", listBarbers.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/barbers/{barberId}", updateBarber.Handle).Methods(http.MethodPatch)

	// --- Рабочие дни ---
	admin.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers/{barberId}/availability", upsertAvailability.Handle).Methods(http.MethodPut)

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

	// Закрываем websocket соединения администраторов
	hub.Close()

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

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
