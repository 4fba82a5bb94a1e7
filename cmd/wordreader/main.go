package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordreader/internal/api"
	"wordreader/internal/config"
	"wordreader/internal/handler"
	"wordreader/internal/library"
	"wordreader/internal/middleware"
	"wordreader/internal/repository"
	"wordreader/internal/repository/postgres"
	"wordreader/internal/service"
	"wordreader/internal/translate"
	"wordreader/internal/vocabulary"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Word Reader")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage", cfg.Storage),
		zap.Bool("bot_enabled", cfg.BotEnabled()),
	)

	// Optional durable storage
	var wordRepo repository.WordRepository
	if cfg.Storage == config.StoragePostgres {
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		logger.Info("Database migrations completed")

		wordRepo = postgres.NewWordRepo(db)
	}

	if cfg.DeepLAPIKey == "" {
		logger.Warn("DEEPL_API_KEY is not set, translations will fail")
	}

	// Initialize services
	store := vocabulary.NewStore()
	vocabService := service.NewVocabularyService(store, wordRepo, logger)
	if err := vocabService.Restore(); err != nil {
		logger.Fatal("Failed to restore vocabulary", zap.Error(err))
	}

	translator := translate.NewDeepLTranslator(cfg.DeepLAPIKey, cfg.DeepLAPIURL)
	catalog := library.NewGutenbergClient(cfg.GutendexURL, cfg.WordsPerPage)

	lookupService := service.NewLookupService(translator, vocabService, logger)
	libraryService := service.NewLibraryService(catalog, cfg.WordsPerPage, logger)
	statsService := service.NewStatsService(vocabService)

	// HTTP reader API
	router := api.NewRouter(api.Services{
		Vocabulary: vocabService,
		Lookup:     lookupService,
		Library:    libraryService,
		Stats:      statsService,
	}, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	}, logger)
	server := api.NewServer(cfg.Addr(), router)

	go func() {
		logger.Info("HTTP server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Telegram reader
	var bot *tele.Bot
	if cfg.BotEnabled() {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		logger.Info("Telegram bot initialized")

		authService := service.NewAuthService(cfg.BotPassword)
		bot.Use(middleware.AuthMiddleware(authService, logger))

		h := handler.NewHandler(bot, authService, vocabService, lookupService, libraryService, statsService, cfg.MaxUploadBytes(), logger)
		h.RegisterHandlers()

		logger.Info("Handlers registered")

		go func() {
			logger.Info("Bot started successfully")
			bot.Start()
		}()
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	if bot != nil {
		bot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// One process writes the vocabulary
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies the SQL files in migrations/
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}
