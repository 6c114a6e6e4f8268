// @title Quiz Crew API
// @version 1.0
// @description Generates quiz content and progressive hints for programming learners.
// @host localhost:8090
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "quiz-crew/cmd/api/docs"
	"quiz-crew/internal/adapter"
	"quiz-crew/internal/adapter/llm"
	"quiz-crew/internal/cache"
	"quiz-crew/internal/config"
	"quiz-crew/internal/domain"
	"quiz-crew/internal/handler"
	"quiz-crew/internal/logger"
	"quiz-crew/internal/middleware"
	"quiz-crew/internal/observability"
	"quiz-crew/internal/parser"
	"quiz-crew/internal/pipeline"
	"quiz-crew/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitTracing(ctx, appLogger, cfg.Tracing)

	backend, err := llm.NewBackend(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create model backend", zap.Error(err))
	}
	appLogger.Info("Model backend initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", backend.ModelID()))

	var recordCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		recordCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis not configured, generation records are not stored")
	}

	generationService := service.NewGenerationService(
		backend,
		pipeline.ConfigFrom(cfg),
		parser.New(parser.Options{StrictLengths: cfg.Parser.StrictLengths}),
		service.NewGenerationStore(recordCache, cfg.Generation.RecordTTL),
	)
	generationHandler := handler.NewGenerationHandler(generationService, func(kind domain.ContentKind) bool {
		return cfg.HintsDefaultFor(kind.String())
	})
	healthHandler := handler.NewHealthHandler(recordCache)
	validator := middleware.NewValidationMiddleware()
	// Runs stop at shutdown or after the run deadline; client disconnects are not observed.
	runContext := middleware.RunContext(ctx, cfg.Pipeline.RunTimeout)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(cfg.CORS.AllowOrigins, ","),
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept",
		ExposeHeaders: middleware.GenerationIDHeader,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", generationHandler.Root)
	app.Get("/health", healthHandler.Health)

	app.Post("/mcq", runContext, validator.ValidateGenerationBody(), generationHandler.GenerateMCQ)
	app.Post("/mcq_trivia", runContext, validator.ValidateGenerationBody(), generationHandler.GenerateTrivia)
	app.Post("/mcq2", runContext, validator.ValidateGenerationBody(), generationHandler.GenerateMCQBatch)
	app.Post("/coding_quiz", runContext, validator.ValidateGenerationBody(), generationHandler.GenerateCodingQuiz)
	app.Post("/drag_drop", runContext, validator.ValidateGenerationBody(), generationHandler.GenerateDragDrop)
	app.Get("/generations/:id", validator.ValidateGenerationID(), generationHandler.GetGeneration)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracing(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}
