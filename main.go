package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/payments"
	"github.com/danielhkuo/talent-studio/router"
	"github.com/danielhkuo/talent-studio/storage"
)

func main() {
	var err error

	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL (pooled, shared by every handler)
	dbConn, err := db.Open(cfg.DatabaseURL, cfg.DBMaxOpen)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "soft_delete", cfg.SoftDelete)

	store, err := storage.NewS3Store(cfg.S3Endpoint, cfg.S3Bucket, cfg.S3AccessKeyID, cfg.S3SecretKey, cfg.CDNBaseURL)
	if err != nil {
		slog.Error("object storage setup failed", "error", err)
		os.Exit(1)
	}

	provider, err := payments.NewProvider(cfg)
	if err != nil {
		slog.Error("payment provider setup failed", "error", err)
		os.Exit(1)
	}
	if !provider.Configured() {
		slog.Warn("payment gateway credentials missing; /payment will answer 500", "provider", provider.Name())
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, store, provider)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
