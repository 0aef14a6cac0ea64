package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storyquest/database"
	"storyquest/internal/cache"
	"storyquest/internal/config"
	"storyquest/internal/gemini"
	"storyquest/internal/generator"
	"storyquest/internal/handler"
	"storyquest/internal/middleware"
	"storyquest/internal/repository"
	"storyquest/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	// Storage: Postgres by default, process-local maps in memory mode.
	var (
		userRepo        repository.UserRepository
		storyRepo       repository.StoryRepository
		textbookRepo    repository.TextbookRepository
		achievementRepo repository.AchievementRepository
		progressRepo    repository.ProgressRepository
	)
	if cfg.StorageMode == config.StorageModeMemory {
		store := repository.NewMemoryStore()
		userRepo = store.Users()
		storyRepo = store.Stories()
		textbookRepo = store.Textbooks()
		achievementRepo = store.Achievements()
		progressRepo = store.Progress()
		logger.Info("using in-memory storage")
	} else {
		db, err := database.Connect(cfg.DatabaseURL, logger)
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		userRepo = repository.NewUserRepository(db)
		storyRepo = repository.NewStoryRepository(db)
		textbookRepo = repository.NewTextbookRepository(db)
		achievementRepo = repository.NewAchievementRepository(db)
		progressRepo = repository.NewProgressRepository(db)
	}

	// Redis is optional; a nil cache is a no-op.
	var storyCache *cache.Cache
	if cfg.RedisAddr != "" {
		storyCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", "error", err)
			storyCache = nil
		}
	}

	model := gemini.NewClient(cfg.GeminiAPIKey,
		gemini.WithBaseURL(cfg.GeminiBaseURL),
		gemini.WithModel(cfg.GeminiModel),
		gemini.WithTimeout(cfg.GeminiTimeout),
	)
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; every story will come from the template catalog")
	}
	resolver := generator.NewResolver(model, logger)

	achievementService := service.NewAchievementService(achievementRepo, logger)
	userService := service.NewUserService(userRepo, progressRepo)
	storyService := service.NewStoryService(storyRepo, userRepo, resolver, storyCache)
	textbookService := service.NewTextbookService(textbookRepo)
	progressService := service.NewProgressService(progressRepo, achievementService, storyCache)
	chatbotService := service.NewChatbotService(model, logger)

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	handler.NewUserHandler(userService).RegisterRoutes(api.Group("/users"))
	handler.NewStoryHandler(storyService).RegisterRoutes(api.Group("/stories"))
	handler.NewTextbookHandler(textbookService).RegisterRoutes(api.Group("/textbooks"))
	handler.NewAchievementHandler(achievementService).RegisterRoutes(api.Group("/achievements"))
	handler.NewProgressHandler(progressService).RegisterRoutes(api.Group("/progress"))
	handler.NewChatbotHandler(chatbotService).RegisterRoutes(api.Group("/chatbot"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "storage_mode", cfg.StorageMode)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
