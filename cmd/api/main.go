// @title Wiki Quiz API
// @version 1.0
// @description Generates multiple-choice quizzes from Wikipedia articles with a language model.
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"wiki-quiz/internal/adapter"
	"wiki-quiz/internal/adapter/quizgen"
	"wiki-quiz/internal/adapter/scraper"
	"wiki-quiz/internal/cache"
	"wiki-quiz/internal/config"
	"wiki-quiz/internal/database"
	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/handler"
	"wiki-quiz/internal/logger"
	"wiki-quiz/internal/repository"
	"wiki-quiz/internal/service"

	_ "wiki-quiz/cmd/api/docs"

	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	// Storage
	dsn := cfg.GetDSN()
	if cfg.DB.AutoMigrate {
		if err := database.MigrateUp(dsn, appLogger); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}
	db, err := database.Connect(dsn, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var quizRepository domain.QuizRepository = repository.NewQuizDatabaseAdapter(db)
	healthChecks := map[string]handler.Pinger{"database": db}

	// Optional detail cache
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, serving quizzes without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
			quizRepository = adapter.NewCachedQuizRepository(quizRepository, cacheAdapter, cfg.Redis.TTL, appLogger.Named("cache"))
			healthChecks["redis"] = handler.PingFunc(cacheAdapter.Ping)
			appLogger.Info("Quiz detail cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.Redis.TTL))
		}
	}

	// Language model
	llm, err := quizgen.NewModel(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator, err := quizgen.NewLLMQuizGenerator(llm, quizgen.Options{
		Temperature:   cfg.LLM.Temperature,
		JSONMode:      cfg.LLM.JSONMode,
		StrictAnswers: cfg.LLM.StrictAnswers,
		Timeout:       cfg.LLM.Timeout,
	}, appLogger.Named("quizgen"))
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}
	appLogger.Info("LLM initialized", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))

	extractor := scraper.NewArticleExtractor(cfg.Scraper.UserAgent, cfg.Scraper.Timeout, appLogger.Named("scraper"))

	quizService := service.NewQuizService(extractor, generator, quizRepository)

	app := handler.NewApp(cfg.Server, handler.NewQuizHandler(quizService), handler.NewHealthHandler(healthChecks))
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
