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

	cancelBookingHandler "github.com/rockm4n/GymMate/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/rockm4n/GymMate/internal/api/handlers/create_booking"
	getDashboardHandler "github.com/rockm4n/GymMate/internal/api/handlers/get_dashboard"
	getMyBookingsHandler "github.com/rockm4n/GymMate/internal/api/handlers/get_my_bookings"
	getScheduleHandler "github.com/rockm4n/GymMate/internal/api/handlers/get_schedule"
	joinWaitingListHandler "github.com/rockm4n/GymMate/internal/api/handlers/join_waiting_list"
	"github.com/rockm4n/GymMate/internal/api/middleware"
	"github.com/rockm4n/GymMate/internal/config"
	bookingRepo "github.com/rockm4n/GymMate/internal/infra/storage/booking"
	scheduledClassRepo "github.com/rockm4n/GymMate/internal/infra/storage/scheduledclass"
	statsRepo "github.com/rockm4n/GymMate/internal/infra/storage/stats"
	waitingListRepo "github.com/rockm4n/GymMate/internal/infra/storage/waitinglist"
	adminService "github.com/rockm4n/GymMate/internal/service/admin"
	bookingsService "github.com/rockm4n/GymMate/internal/service/bookings"
	scheduleService "github.com/rockm4n/GymMate/internal/service/schedule"
	cancelBookingUC "github.com/rockm4n/GymMate/internal/usecase/cancel_booking"
	createBookingUC "github.com/rockm4n/GymMate/internal/usecase/create_booking"
	joinWaitingListUC "github.com/rockm4n/GymMate/internal/usecase/join_waiting_list"
	"github.com/rockm4n/GymMate/pkg/dbmetrics"
	"github.com/rockm4n/GymMate/pkg/logger"
	"github.com/rockm4n/GymMate/pkg/metrics"
	"github.com/rockm4n/GymMate/pkg/simpletxmanager"
	"github.com/rockm4n/GymMate/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GymMate booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Transaction manager interface shared by the use cases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Domain counters: the real collector when metrics are on, no-ops
	// otherwise
	type DomainMetrics interface {
		IncBookingsCreated(outcome string)
		IncBookingsCancelled(outcome string)
		IncWaitlistJoins(outcome string)
	}

	var (
		bookingRepository     *bookingRepo.Repository
		classRepository       *scheduledClassRepo.Repository
		waitingListRepository *waitingListRepo.Repository
		statsRepository       *statsRepo.Repository
		txMgr                 TxManager
		domainMetrics         DomainMetrics
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		classRepository = scheduledClassRepo.NewRepository(wrappedDB)
		waitingListRepository = waitingListRepo.NewRepository(wrappedDB)
		statsRepository = statsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		domainMetrics = metricsCollector
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		classRepository = scheduledClassRepo.NewRepository(db)
		waitingListRepository = waitingListRepo.NewRepository(db)
		statsRepository = statsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
		domainMetrics = metrics.Noop{}
	}

	// Services
	scheduleSvc := scheduleService.NewService(classRepository, bookingRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, cfg.Booking.DisplayLocation(), log)
	adminSvc := adminService.NewService(statsRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		classRepository,
		bookingRepository,
		txMgr,
		log,
		domainMetrics,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		waitingListRepository,
		txMgr,
		cfg.Booking.AutoPromoteWaitlist,
		log,
		domainMetrics,
	)
	joinWaitingListUseCase := joinWaitingListUC.NewUseCase(
		classRepository,
		bookingRepository,
		waitingListRepository,
		log,
		domainMetrics,
	)
	if cfg.Booking.AutoPromoteWaitlist {
		log.Info("Waiting list auto-promotion enabled")
	}

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	joinWaitingList := joinWaitingListHandler.NewHandler(joinWaitingListUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(adminSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes. The schedule is browsable anonymously; a valid
	// X-User-ID header enriches it with the caller's bookings.
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)
	public.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/waiting-list-entries", joinWaitingList.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
