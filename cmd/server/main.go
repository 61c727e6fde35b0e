package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"assistente/internal/catalog"
	"assistente/internal/config"
	"assistente/internal/handler"
	"assistente/internal/service"
	"assistente/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Assistente Imobiliário - Nova Torres")
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

	// Load the listing catalog produced by the scraping pipeline
	cat, err := catalog.Load(&cfg.Catalog)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if cat.Empty() {
		log.Println("⚠️  Catalog is empty - the assistant will answer with its no-data message")
	} else {
		log.Printf("✅ Catalog ready with %d listings", len(cat.Listings()))
	}

	// Initialize session store (bounded, per-session locking)
	sessions, err := session.NewStore(cfg.Chat.SessionCapacity, cfg.Chat.HistorySize)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	// Initialize OpenAI client
	var generator service.Generator
	if cfg.OpenAI.Enabled {
		generator = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("✅ OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Temperature: %.2f", cfg.OpenAI.Temperature)
	} else {
		log.Println("⚠️  OpenAI is disabled - answers will use the deterministic templates")
		log.Println("   Set OPENAI_API_KEY environment variable to enable generated prose")
	}

	// Initialize services
	retriever := service.NewRetriever(nil)
	engine := service.NewEngine(cat, sessions, retriever, generator, &cfg.Chat)

	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(engine)
	searchHandler := handler.NewSearchHandler(engine)
	feedbackHandler := handler.NewFeedbackHandler(engine)
	imageHandler := handler.NewImageHandler(cat)

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
			"service":    "assistente-imobiliario",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"listings":   len(cat.Listings()),
		})
	})

	// Image redirect (relative upstream paths resolved to absolute URLs)
	router.GET("/imagem/*path", imageHandler.Redirect)

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/perguntar", chatHandler.Ask)
		apiV1.POST("/buscar", searchHandler.Search)
		apiV1.POST("/sessao/limpar", chatHandler.ClearSession)
		apiV1.POST("/feedback", feedbackHandler.Submit)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)

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
