package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"boardlink-backend/internal/config"
	"boardlink-backend/internal/jobs"
	"boardlink-backend/internal/logger"
	"boardlink-backend/internal/repository/postgres"
	"boardlink-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'close-expired-gatherings', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting BoardLink Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	store := postgres.NewStore(db)
	jobRunner := jobs.NewJobRunner(store, cfg)

	// Handle run-once mode
	if *runOnce != "" {
		switch *runOnce {
		case "close-expired-gatherings":
			jobRunner.CloseExpiredGatherings()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Scheduled mode: run until interrupted
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	logger.Info("Cronjob runner stopped")
}
