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

	createBookingHandler "github.com/kaimb/booking-service/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/kaimb/booking-service/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/kaimb/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/kaimb/booking-service/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/kaimb/booking-service/internal/api/handlers/get_catalog"
	listBookingsHandler "github.com/kaimb/booking-service/internal/api/handlers/list_bookings"
	updateStatusHandler "github.com/kaimb/booking-service/internal/api/handlers/update_booking_status"
	"github.com/kaimb/booking-service/internal/api/middleware"
	"github.com/kaimb/booking-service/internal/config"
	"github.com/kaimb/booking-service/internal/domain"
	bookingRepo "github.com/kaimb/booking-service/internal/infra/storage/booking"
	bookingsService "github.com/kaimb/booking-service/internal/service/bookings"
	createBookingUC "github.com/kaimb/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/kaimb/booking-service/internal/usecase/get_available_slots"
	"github.com/kaimb/booking-service/pkg/dbmetrics"
	"github.com/kaimb/booking-service/pkg/logger"
	"github.com/kaimb/booking-service/pkg/metrics"
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

	log.Info("Starting %s booking service...", domain.BusinessName)

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

	var repository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		go wrappedDB.StartPoolCollector(15*time.Second, stopMetricsCh)
		repository = bookingRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		repository = bookingRepo.NewRepository(db)
	}

	// The schedule and catalog are compiled-in and read-only after startup.
	schedule := domain.DefaultSchedule()

	bookingSvc := bookingsService.NewService(repository, log)
	createBookingUseCase := createBookingUC.NewUseCase(repository, schedule, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repository, schedule, log)

	getCatalog := getCatalogHandler.NewHandler(schedule, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: everything the booking form needs.
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Admin routes, guarded by the shared secret.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Password))
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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
