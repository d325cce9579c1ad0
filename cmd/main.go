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

	addReviewHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/add_review"
	adminBookingsHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/admin_bookings"
	createBookingHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/create_booking"
	getCabinetHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/get_cabinet"
	listVenuesHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/list_venues"
	loginHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/login"
	logoutHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/logout"
	registerHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/register"
	updateStatusHandler "github.com/ElizarovAleksey/Banketam.net/internal/api/handlers/update_booking_status"
	"github.com/ElizarovAleksey/Banketam.net/internal/api/middleware"
	"github.com/ElizarovAleksey/Banketam.net/internal/config"
	bookingRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/booking"
	reviewRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/review"
	userRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/user"
	venueRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/venue"
	bookingsService "github.com/ElizarovAleksey/Banketam.net/internal/service/bookings"
	usersService "github.com/ElizarovAleksey/Banketam.net/internal/service/users"
	addReviewUC "github.com/ElizarovAleksey/Banketam.net/internal/usecase/add_review"
	"github.com/ElizarovAleksey/Banketam.net/pkg/authtoken"
	"github.com/ElizarovAleksey/Banketam.net/pkg/logger"
	"github.com/ElizarovAleksey/Banketam.net/pkg/metrics"
)

func main() {
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

	log.Info("Starting Banketam.net booking service...")
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

	// Менеджер сессионных токенов
	tokenManager := authtoken.NewManager(
		cfg.Auth.TokenSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(db)
	venueRepository := venueRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	reviewRepository := reviewRepo.NewRepository(db)

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, tokenManager, cfg.Auth.BCryptCost, log)
	bookingSvc := bookingsService.NewService(bookingRepository, venueRepository, log)

	// Инициализируем use cases
	addReviewUseCase := addReviewUC.NewUseCase(bookingRepository, reviewRepository, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	logout := logoutHandler.NewHandler(log)
	getCabinet := getCabinetHandler.NewHandler(bookingSvc, log)
	listVenues := listVenuesHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	addReview := addReviewHandler.NewHandler(addReviewUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// Список помещений для формы создания заявки
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, userSvc))

	// Личный кабинет: заявки текущего пользователя
	protected.HandleFunc("/cabinet", getCabinet.Handle).Methods(http.MethodGet)

	// Создание заявки на бронирование
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отзыв на завершенный банкет
	protected.HandleFunc("/bookings/{bookingId}/review", addReview.HandleForm).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/review", addReview.Handle).Methods(http.MethodPost)

	// --- Админ-панель ---
	// Список заявок с фильтрацией, сортировкой и пагинацией
	protected.HandleFunc("/admin/bookings", adminBookings.Handle).Methods(http.MethodGet)

	// Перевод заявки в новый статус
	protected.HandleFunc("/admin/bookings/{bookingId}/status/{newStatus}",
		updateStatus.Handle).Methods(http.MethodPatch)

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
