package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/cintasign/hse-portal/internal/config"
	"github.com/cintasign/hse-portal/internal/database"
	"github.com/cintasign/hse-portal/internal/handlers"
	"github.com/cintasign/hse-portal/internal/middleware"
	"github.com/cintasign/hse-portal/internal/utils"

	_ "github.com/cintasign/hse-portal/docs/api" // Swagger docs
)

// @title HSE Inspection Portal API
// @version 1.0.0
// @description Multi-brand HSE inspection submission service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/cintasign/hse-portal

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("hse_portal")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Version middleware
	app.Use(middleware.VersionMiddleware())

	// Create handlers
	submissionHandler := &handlers.SubmissionHandler{DB: db, Cfg: cfg}
	sequenceHandler := &handlers.SequenceHandler{DB: db}
	sessionHandler := &handlers.SessionHandler{DB: db}

	// Submission routes (admin-only delete re-checks the role in the handler)
	app.Get("/submissions", middleware.RequireUser(db, cfg), submissionHandler.ListSubmissions)
	app.Post("/submissions", middleware.RequireUser(db, cfg), submissionHandler.CreateSubmission)
	app.Delete("/submissions/:id", middleware.RequireAdmin(db, cfg), submissionHandler.DeleteSubmission)

	// Document sequence peek (no auth; read-only suggestion for the form pages)
	app.Get("/next-document", sequenceHandler.NextDocumentNumber)

	// Session routes
	app.Post("/logout", middleware.RequireUser(db, cfg), sessionHandler.Logout)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Resource not found", "")
	})

	// The Authorizer client is initialized on the first authenticated request
	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
