package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/MeritX-US/meritx-intake/pkg/validator"

	"github.com/MeritX-US/meritx-intake/internal/adapter/handler"
	"github.com/MeritX-US/meritx-intake/internal/usecase/summary"
	"github.com/MeritX-US/meritx-intake/internal/usecase/transcription"
	pkgai "github.com/MeritX-US/meritx-intake/pkg/ai"
	"github.com/MeritX-US/meritx-intake/pkg/config"
)

// @title           MeritX Intake API
// @version         1.0
// @description     Audio intake API for legal consultations: transcription with speaker separation and PII redaction, plus structured summarization

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Temporary audio uploads live here until transcription finishes
	if err := os.MkdirAll(cfg.Transcription.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %q: %v", cfg.Transcription.UploadDir, err)
	}

	// Initialize transcription backend
	log.Println("🎙️  Initializing transcription backend...")
	var transcriber pkgai.Transcriber
	switch cfg.Transcription.Backend {
	case config.BackendDeepgram:
		transcriber = pkgai.NewDeepgramClient(&cfg.Deepgram)
	default:
		transcriber = pkgai.NewAssemblyAIClient(&cfg.AssemblyAI)
	}
	log.Printf("✅ Transcription backend: %s", cfg.Transcription.Backend)
	transcriptionService := transcription.NewService(transcriber, cfg.Transcription.Backend, logger)

	// Initialize summarization backend
	log.Println("🤖 Initializing summarization backend...")
	geminiClient, err := pkgai.NewGeminiClient(context.Background(), &cfg.Gemini)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	summaryService := summary.NewService(geminiClient, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		handler.NewTranscribeHandler(transcriptionService, cfg.Transcription.UploadDir, logger),
		handler.NewSummarizeHandler(summaryService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/api/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
