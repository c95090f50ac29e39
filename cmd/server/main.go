package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "boardlink-backend/internal/api/http"
	"boardlink-backend/internal/config"
	"boardlink-backend/internal/jobs"
	"boardlink-backend/internal/logger"
	"boardlink-backend/internal/repository/postgres"
	"boardlink-backend/internal/scheduler"
	"boardlink-backend/internal/security"
	"boardlink-backend/internal/service"
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
	logger.Info("Starting BoardLink Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Store
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	authSvc := service.NewAuthService(store, tokenManager)
	userSvc := service.NewUserService(store)
	gatheringSvc := service.NewGatheringService(store, emailSvc)
	marketSvc := service.NewMarketService(store, emailSvc)
	adminSvc := service.NewAdminService(store)

	// Initialize HTTP handlers
	authHandler := api.NewAuthHandler(authSvc)
	userHandler := api.NewUserHandler(userSvc, adminSvc)
	gatheringHandler := api.NewGatheringHandler(gatheringSvc, adminSvc)
	marketHandler := api.NewMarketHandler(marketSvc, adminSvc)

	router := api.NewRouter(tokenManager, authHandler, userHandler, gatheringHandler, marketHandler)

	// Start the in-process scheduler
	jobRunner := jobs.NewJobRunner(store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
