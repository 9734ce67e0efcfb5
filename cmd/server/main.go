package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/gadgetquiz/internal/api"
	"github.com/vytor/gadgetquiz/internal/config"
	"github.com/vytor/gadgetquiz/internal/db"
	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/repository/sqlite"
	"github.com/vytor/gadgetquiz/internal/services"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("GadgetQuiz Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("seed_data=%t", cfg.SeedData)
	log.Debug("cors_allowed_origins=%s", cfg.CORSAllowedOrigins)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	if cfg.SeedData {
		if err := database.Seed(context.Background()); err != nil {
			log.Error("failed to seed reference data: %v", err)
			os.Exit(1)
		}
	}

	// Initialize repositories
	gadgetRepo := sqlite.NewGadgetRepository(database.DB)
	questionRepo := sqlite.NewQuestionRepository(database.DB)
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	answerRepo := sqlite.NewAnswerRepository(database.DB)

	// Initialize services
	gameService := services.NewGameService(sessionRepo, questionRepo, answerRepo)
	quizService := services.NewQuizService(sessionRepo, questionRepo, gadgetRepo)

	srv := &api.Server{
		GameService:        gameService,
		QuizService:        quizService,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("GadgetQuiz Server Stopped")
	log.Info("===========================================")
}
