package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cartsense/internal/config"
	"cartsense/internal/handler"
	"cartsense/internal/repository"
	"cartsense/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("CartSense Shopping Assistant")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize the list/history store
	var store repository.Store
	switch cfg.Store.Driver {
	case "postgres":
		pg, err := repository.NewPostgresStore(
			cfg.Store.DSN,
			cfg.Store.MaxConnections,
			cfg.Store.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		store = pg
		log.Println("✅ Connected to PostgreSQL list store")
	default:
		store = repository.NewMemoryStore()
		log.Println("✅ Using in-memory list store")
	}

	// Initialize the intent extractor
	var extractor service.Extractor
	switch cfg.Intent.Provider {
	case "openai":
		if !cfg.OpenAI.Enabled {
			log.Println("⚠️  OpenAI is disabled - commands will fail until a key is set")
			log.Println("   Set OPENAI_API_KEY environment variable to enable intent extraction")
		}
		extractor = service.NewOpenAIExtractor(&cfg.OpenAI)
		log.Printf("✅ OpenAI-compatible extractor initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
	default:
		if !cfg.Gemini.Enabled {
			log.Println("⚠️  Gemini is disabled - commands will fail until a key is set")
			log.Println("   Set GEMINI_API_KEY environment variable to enable intent extraction")
			extractor = service.DisabledExtractor{}
			break
		}
		gem, err := service.NewGeminiExtractor(context.Background(), &cfg.Gemini)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini extractor: %v", err)
		}
		defer gem.Close()
		extractor = gem
		log.Printf("✅ Gemini extractor initialized")
		log.Printf("   - Model: %s", cfg.Gemini.Model)
	}

	// Initialize services
	translator := service.NewGoogleTranslator(&cfg.Translate)
	if !cfg.Translate.Enabled {
		log.Println("⚠️  Translation is disabled - non-English commands pass through untranslated")
	}
	catalog := repository.DefaultCatalog()
	advisor := service.NewAdvisor(store)
	pipeline := service.NewPipeline(
		translator,
		extractor,
		store,
		catalog,
		advisor,
		time.Duration(cfg.Intent.Timeout)*time.Second,
	)

	log.Println("✅ Services initialized")

	// Initialize handlers
	commandHandler := handler.NewCommandHandler(pipeline)
	listHandler := handler.NewListHandler(store)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "cartsense",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/command", commandHandler.Command)

		apiV1.GET("/list", listHandler.Get)
		apiV1.POST("/list/items", listHandler.Add)
		apiV1.DELETE("/list/items/:name", listHandler.Remove)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1/command", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
