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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceDraftHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/advance_draft"
	cancelBookingHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/cancel_booking"
	createDraftHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/create_draft"
	estimateDurationHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/estimate_duration"
	getAvailableSlotsHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/get_booking"
	getDraftHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/get_draft"
	getServicesHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/get_services"
	getUserBookingsHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/get_user_bookings"
	loginHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/login"
	logoutHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/logout"
	payDepositHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/pay_deposit"
	registerHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/register"
	reverseGeocodeHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/reverse_geocode"
	submitApplicationHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/submit_application"
	suggestAddressesHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/suggest_addresses"
	updateDraftHandler "github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/update_draft"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/middleware"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/config"
	applicantRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/applicant"
	bookingRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/booking"
	sessionRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/session"
	userRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/user"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/integrations/gcalendar"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/integrations/nominatim"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/mailer"
	applicantsService "github.com/dipeshpuri/CleanrCrew-Patched/internal/service/applicants"
	authService "github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth"
	bookingsService "github.com/dipeshpuri/CleanrCrew-Patched/internal/service/bookings"
	resolveSlotsUC "github.com/dipeshpuri/CleanrCrew-Patched/internal/usecase/resolve_slots"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
	"github.com/dipeshpuri/CleanrCrew-Patched/pkg/logger"
	"github.com/dipeshpuri/CleanrCrew-Patched/pkg/metrics"
)

func main() {
	// Подхватываем .env, если он есть
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting CleanrCrew booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем интеграционных клиентов
	calendarClient := gcalendar.NewClient(
		cfg.Calendar.BaseURL,
		cfg.Calendar.CalendarID,
		cfg.Calendar.APIKey,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	geocoderClient := nominatim.NewClient(
		cfg.Geocoder.BaseURL,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (calendar=%s, geocoder=%s)",
		cfg.Calendar.BaseURL, cfg.Geocoder.BaseURL)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	sessionRepository := sessionRepo.NewRepository(db)
	applicantRepository := applicantRepo.NewRepository(db)

	// Инициализируем use cases
	// Календарь и собственные бронирования вместе определяют занятость;
	// при недоступности календаря резолвер уходит в детерминированную симуляцию
	busySource := resolveSlotsUC.MergeSources(calendarClient, bookingRepository)
	resolveSlotsUseCase := resolveSlotsUC.NewUseCase(busySource, log)

	// Инициализируем рендер и отправку писем
	emailTemplater := mailer.NewTemplater()
	var emailSender wizard.EmailSender
	if cfg.Mail.Enabled {
		emailSender = mailer.NewSMTPSender(
			cfg.Mail.Host,
			cfg.Mail.Port,
			cfg.Mail.Username,
			cfg.Mail.Password,
			cfg.Mail.FromEmail,
		)
		log.Info("SMTP sender enabled (host=%s, from=%s)", cfg.Mail.Host, cfg.Mail.FromEmail)
	}

	// Инициализируем мастер бронирования
	wizardManager := wizard.NewManager(
		resolveSlotsUseCase,
		bookingRepository,
		emailTemplater,
		emailSender,
		time.Duration(cfg.Payment.DelayMillis)*time.Millisecond,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	authSvc := authService.NewService(userRepository, sessionRepository, log)
	applicantSvc := applicantsService.NewService(applicantRepository, log)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(log)
	estimateDuration := estimateDurationHandler.NewHandler(log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(resolveSlotsUseCase, log)
	suggestAddresses := suggestAddressesHandler.NewHandler(geocoderClient, cfg.Geocoder.CountryCode, log)
	reverseGeocode := reverseGeocodeHandler.NewHandler(geocoderClient, log)
	createDraft := createDraftHandler.NewHandler(wizardManager, log)
	getDraft := getDraftHandler.NewHandler(wizardManager, log)
	updateDraft := updateDraftHandler.NewHandler(wizardManager, log)
	advanceDraft := advanceDraftHandler.NewHandler(wizardManager, log)
	payDeposit := payDepositHandler.NewHandler(wizardManager, log)
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	submitApplication := submitApplicationHandler.NewHandler(applicantSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Расчет длительности и стоимости
	api.HandleFunc("/estimate", estimateDuration.Handle).Methods(http.MethodPost)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Автодополнение адресов и адрес по координатам
	api.HandleFunc("/addresses/suggest", suggestAddresses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addresses/reverse", reverseGeocode.Handle).Methods(http.MethodGet)

	// Регистрация и вход
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Заявки соискателей
	api.HandleFunc("/applications", submitApplication.Handle).Methods(http.MethodPost)

	// ============================================================
	// WIZARD ROUTES (гостевые, сессия опциональна)
	// ============================================================

	drafts := api.PathPrefix("/drafts").Subrouter()
	drafts.Use(middleware.OptionalAuth(authSvc))

	drafts.HandleFunc("", createDraft.Handle).Methods(http.MethodPost)
	drafts.HandleFunc("/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	drafts.HandleFunc("/{draftId}", updateDraft.Handle).Methods(http.MethodPatch)
	drafts.HandleFunc("/{draftId}/advance", advanceDraft.Handle).Methods(http.MethodPost)
	drafts.HandleFunc("/{draftId}/pay", payDeposit.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют действующую сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// Выход
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Бронирование по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
