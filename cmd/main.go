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

	createDraftHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/create_draft"
	deleteDraftHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/delete_draft"
	deleteTourHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/delete_tour"
	getBookingHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/get_booking"
	getDraftHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/get_draft"
	getTourHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/get_tour"
	listBookingsHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/list_bookings"
	listToursHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/list_tours"
	navigateDraftHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/navigate_draft"
	submitDraftHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/submit_draft"
	updateDraftFieldHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/update_draft_field"
	verifyPaymentHandler "github.com/m04kA/TMS-AdminService/internal/api/handlers/verify_payment"
	"github.com/m04kA/TMS-AdminService/internal/api/middleware"
	"github.com/m04kA/TMS-AdminService/internal/config"
	"github.com/m04kA/TMS-AdminService/internal/infra/querycache"
	draftRepo "github.com/m04kA/TMS-AdminService/internal/infra/storage/draft"
	tourBackendClient "github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	draftFormService "github.com/m04kA/TMS-AdminService/internal/service/draftform"
	remoteStateService "github.com/m04kA/TMS-AdminService/internal/service/remotestate"
	createTourUC "github.com/m04kA/TMS-AdminService/internal/usecase/create_tour"
	updateTourUC "github.com/m04kA/TMS-AdminService/internal/usecase/update_tour"
	verifyPaymentUC "github.com/m04kA/TMS-AdminService/internal/usecase/verify_payment"
	"github.com/m04kA/TMS-AdminService/pkg/dbmetrics"
	"github.com/m04kA/TMS-AdminService/pkg/logger"
	"github.com/m04kA/TMS-AdminService/pkg/metrics"
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

	log.Info("Starting TMS-AdminService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (автосохранение черновиков)
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

	// Клиент REST-бэкенда туров
	backendClient := tourBackendClient.NewClient(
		cfg.TourBackend.URL,
		time.Duration(cfg.TourBackend.Timeout)*time.Second,
		log,
	)
	log.Info("Tour backend client initialized (url=%s, timeout=%ds)",
		cfg.TourBackend.URL, cfg.TourBackend.Timeout)

	// Репозиторий черновиков (с метриками или без)
	var draftRepository *draftRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		draftRepository = draftRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection enabled")
	} else {
		draftRepository = draftRepo.NewRepository(db)
	}

	// Кеш запросов к бэкенду с фоновой очисткой
	cache := querycache.New(
		time.Duration(cfg.Cache.StaleAfterSeconds)*time.Second,
		time.Duration(cfg.Cache.GCAfterSeconds)*time.Second,
		metricsCollector,
	)
	cache.StartGC(time.Minute)
	defer cache.Stop()
	log.Info("Query cache initialized (stale_after=%ds, gc_after=%ds)",
		cfg.Cache.StaleAfterSeconds, cfg.Cache.GCAfterSeconds)

	// Инициализируем сервисы
	remoteState := remoteStateService.New(backendClient, cache, log)
	draftForm := draftFormService.NewService(
		draftRepository,
		remoteState,
		log,
		&draftFormService.RealTimeProvider{},
		time.Duration(cfg.Drafts.ValidateQuietMillis)*time.Millisecond,
	)
	defer draftForm.Close()

	// Инициализируем use cases
	createTourUseCase := createTourUC.NewUseCase(draftForm, remoteState, log)
	updateTourUseCase := updateTourUC.NewUseCase(draftForm, remoteState, log)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(remoteState, log)

	// Фоновая чистка брошенных сессий черновиков
	purgeCtx, purgeCancel := context.WithCancel(context.Background())
	defer purgeCancel()
	go func() {
		interval := time.Duration(cfg.Drafts.PurgeIntervalMins) * time.Minute
		maxAge := time.Duration(cfg.Drafts.SessionMaxAgeHours) * time.Hour
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-purgeCtx.Done():
				return
			case <-ticker.C:
				purged, err := draftForm.PurgeStale(purgeCtx, maxAge)
				if err != nil {
					log.Error("Failed to purge stale draft sessions: %v", err)
					continue
				}
				if purged > 0 {
					log.Info("Purged %d stale draft sessions", purged)
				}
			}
		}
	}()

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(draftForm, log)
	getDraft := getDraftHandler.NewHandler(draftForm, log)
	updateDraftField := updateDraftFieldHandler.NewHandler(draftForm, log)
	navigateDraft := navigateDraftHandler.NewHandler(draftForm, log)
	submitDraft := submitDraftHandler.NewHandler(draftForm, createTourUseCase, updateTourUseCase, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftForm, log)
	listTours := listToursHandler.NewHandler(remoteState, log)
	getTour := getTourHandler.NewHandler(remoteState, log)
	deleteTour := deleteTourHandler.NewHandler(remoteState, log)
	listBookings := listBookingsHandler.NewHandler(remoteState, log)
	getBooking := getBookingHandler.NewHandler(remoteState, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: всё за аутентификацией гейтвея
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Сессии черновиков ---
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{sessionId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{sessionId}/fields", updateDraftField.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/drafts/{sessionId}/navigate", navigateDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{sessionId}/submit", submitDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{sessionId}", deleteDraft.Handle).Methods(http.MethodDelete)

	// --- Туры (кешированное зеркало бэкенда) ---
	api.HandleFunc("/tours", listTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}", getTour.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}", deleteTour.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/verify-payment", verifyPayment.Handle).Methods(http.MethodPost)

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
