package main

import (
	"log"
	"time"

	"github.com/say2me/backend/internal/config"
	"github.com/say2me/backend/internal/database"
	"github.com/say2me/backend/internal/handler"
	"github.com/say2me/backend/internal/middleware"
	"github.com/say2me/backend/internal/repository"
	"github.com/say2me/backend/internal/service"
	"github.com/say2me/backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	redisClient, err := middleware.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	messageRepo := repository.NewMessageRepository(database.DB)

	// Initialize services
	pageService := service.NewPageService(userRepo)
	messageService := service.NewMessageService(messageRepo, userRepo, cfg.GlobalMessageCap)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(pageService)
	messageHandler := handler.NewMessageHandler(messageService)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
	})

	// Setup Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	router.Use(middleware.SecurityHeaders(cfg.FrontendOrigins))
	router.Use(middleware.HSTS(cfg.Environment == "production"))
	// Header stripping covers every route, before any handler runs
	router.Use(middleware.Anonymize())
	router.Use(rateLimiter.Middleware())

	api := router.Group("/api")
	{
		api.POST("/pages", pageHandler.CreatePage)
		api.GET("/pages/:username", pageHandler.GetPage)

		api.GET("/messages", messageHandler.ListGlobal)
		api.POST("/messages", messageHandler.PostGlobal)
		api.GET("/messages/:userId", messageHandler.ListForUser)
		api.POST("/messages/:userId", messageHandler.PostToUser)
	}

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
