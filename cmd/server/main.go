package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "autonom-backend/internal/api/http"
	"autonom-backend/internal/config"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/repository/postgres"
	"autonom-backend/internal/security"
	"autonom-backend/internal/service"
	"autonom-backend/internal/storage"
	"autonom-backend/migrations"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development secrets live in .env
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Autonom Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema migrations
	if err := migrations.Run(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Document Storage
	rules := storage.Rules{
		MaxSizeBytes: cfg.Storage.MaxFileSizeMB << 20,
		AllowedTypes: cfg.Storage.AllowedTypes,
	}
	localStore, err := storage.NewLocalStorage(cfg.Storage.UploadDir, rules)
	if err != nil {
		logger.Error("Failed to initialize document storage", "error", err)
		log.Fatalf("Failed to initialize document storage: %v", err)
	}
	logger.Info("Document storage ready", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Services
	authSvc := service.NewAuthService(store.StaffRepository, tokenManager)
	clientSvc := service.NewClientService(store.ClientRepository)
	fleetSvc := service.NewFleetService(store.VehicleRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.TransactionRepository,
		store.VehicleRepository,
		store.ClientRepository,
	)
	paymentSvc := service.NewPaymentService(store.TransactionRepository, cfg.Company)
	reportSvc := service.NewReportService(
		store.ClientRepository,
		store.VehicleRepository,
		store.ReservationRepository,
		store.TransactionRepository,
	)
	alertSvc := service.NewAlertService(store.ReservationRepository, store.TransactionRepository, cfg.Alerts)
	documentSvc := service.NewDocumentService(store.DocumentRepository, store.ReservationRepository, localStore)
	exportSvc := service.NewExportService(
		store.ClientRepository,
		store.VehicleRepository,
		store.ReservationRepository,
		store.TransactionRepository,
	)

	// Build the HTTP API
	router := httpapi.NewRouter(&httpapi.Services{
		Auth:        authSvc,
		Client:      clientSvc,
		Fleet:       fleetSvc,
		Reservation: reservationSvc,
		Payment:     paymentSvc,
		Report:      reportSvc,
		Alert:       alertSvc,
		Document:    documentSvc,
		Export:      exportSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
