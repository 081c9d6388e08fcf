package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/config"
	"github.com/Anthony-S101/AI-Hiring-Platform/internal/handlers"
	"github.com/Anthony-S101/AI-Hiring-Platform/internal/repositories"
	"github.com/Anthony-S101/AI-Hiring-Platform/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	stateService := services.NewSessionStateService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	llmService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize the question index
	questionIndex, err := services.NewQuestionIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := questionIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Question index initialized successfully")

	// Initialize the interview orchestrator
	interviewService := services.NewInterviewService(
		sessionRepo,
		questionRepo,
		llmService,
		questionIndex,
		pdfParser,
		stateService,
	)
	log.Println("✅ Interview service initialized")

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(
		interviewService,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	answerHandler := handlers.NewAnswerHandler(interviewService)
	submissionHandler := handlers.NewSubmissionHandler(interviewService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Mock Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/sessions", sessionHandler.HandleCreateSession)
	api.Get("/sessions/:id", sessionHandler.HandleGetSession)
	api.Post("/sessions/:id/answer", answerHandler.HandleSubmitAnswer)
	api.Post("/sessions/:id/submit", submissionHandler.HandleSubmitTest)
	api.Post("/sessions/:id/code", submissionHandler.HandleSubmitCode)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Mock Interview API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"GET /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/answer",
				"POST /api/v1/sessions/:id/submit",
				"POST /api/v1/sessions/:id/code",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
