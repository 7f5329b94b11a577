package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	_ "github.com/lib/pq"

	httpapi "timeless-backend/internal/api/http"
	"timeless-backend/internal/config"
	"timeless-backend/internal/logger"
	"timeless-backend/internal/repository/postgres"
	"timeless-backend/internal/security"
	"timeless-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Timeless Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize Services
	authService := service.NewAuthService(store.UserRepository, store.AddressRepository, tokenManager)
	addressService := service.NewAddressService(store.AddressRepository, store.UserRepository)
	brandService := service.NewBrandService(store.BrandRepository)
	watchService := service.NewWatchService(store.WatchRepository, store.BrandRepository)
	rentalService := service.NewRentalService(store.RentalRepository, store.WatchRepository)
	paymentService := service.NewPaymentService(store.PaymentRepository, store.RentalRepository)

	// Initialize HTTP API
	h := httpapi.Handlers{
		User:    httpapi.NewUserHandler(authService),
		Address: httpapi.NewAddressHandler(addressService),
		Brand:   httpapi.NewBrandHandler(brandService),
		Watch:   httpapi.NewWatchHandler(watchService),
		Rental:  httpapi.NewRentalHandler(rentalService),
		Payment: httpapi.NewPaymentHandler(paymentService),
	}
	router := httpapi.NewRouter(h, tokenManager)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	handler := handlers.CombinedLoggingHandler(os.Stdout, cors(router))

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), handler); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
