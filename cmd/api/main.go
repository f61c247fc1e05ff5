// @title E-Learn API
// @version 1.0
// @description Course quizzes generated by a chat model from text or uploaded PDFs.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "elearn-api/cmd/api/docs"
	"elearn-api/internal/adapter/pdftext"
	"elearn-api/internal/adapter/quizgen"
	"elearn-api/internal/adapter/rediscache"
	"elearn-api/internal/cache"
	"elearn-api/internal/config"
	"elearn-api/internal/database"
	"elearn-api/internal/domain"
	"elearn-api/internal/handler"
	"elearn-api/internal/logger"
	"elearn-api/internal/metrics"
	"elearn-api/internal/middleware"
	"elearn-api/internal/repository"
	"elearn-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	metrics.Init()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis only backs the extracted-text cache, so the API runs without it.
	var textCache domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, document text cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		textCache = rediscache.NewRedisCache(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	userRepository := repository.NewUserDatabaseAdapter(db)
	courseRepository := repository.NewCourseDatabaseAdapter(db)
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	attemptRepository := repository.NewQuizAttemptDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	generator := quizgen.NewFromConfig(&cfg.AI, appLogger)
	documentTextService := service.NewDocumentTextService(pdftext.NewExtractor(), textCache, cfg.Redis.TextTTL)
	aiService := service.NewAIService(generator, courseRepository, documentTextService, cfg.Upload.Dir)
	quizService := service.NewQuizService(quizRepository, courseRepository, txManager)
	attemptService := service.NewQuizAttemptService(attemptRepository, quizRepository, userRepository)
	authService, err := service.NewAuthService(userRepository, cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	aiHandler := handler.NewAIHandler(aiService)
	quizHandler := handler.NewQuizHandler(quizService)
	attemptHandler := handler.NewQuizAttemptHandler(attemptService)
	authHandler := handler.NewAuthHandler(authService)
	var cachePinger handler.CachePinger
	if textCache != nil {
		cachePinger = textCache
	}
	healthHandler := handler.NewHealthHandler(db, cachePinger)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(metrics.Middleware())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", metrics.Handler())
	app.Get("/health", healthHandler.Check)

	validate := middleware.NewValidationMiddleware()
	protected := middleware.Protected(authService)

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	ai := api.Group("/ai")
	ai.Post("/prompt", aiHandler.GenerateFromPrompt)
	ai.Post("/document-quiz/:id", validate.ValidateIDParam("id"), aiHandler.GenerateFromDocument)

	quizz := api.Group("/quizz")
	quizz.Post("/create", protected, quizHandler.CreateQuiz)
	quizz.Get("/course/:courseId", validate.ValidateIDParam("courseId"), quizHandler.ListByCourse)
	quizz.Get("/:id", validate.ValidateIDParam("id"), quizHandler.GetQuiz)

	api.Get("/quizz-attempt", attemptHandler.ListAttempts)
	api.Post("/quizz-attempt", protected, attemptHandler.SubmitAttempt)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
