package main

import (
	"context"
	"log"
	"time"

	"github.com/Ideal-Pranav/Career-finder/internal/cache"
	"github.com/Ideal-Pranav/Career-finder/internal/config"
	"github.com/Ideal-Pranav/Career-finder/internal/events"
	"github.com/Ideal-Pranav/Career-finder/internal/handlers"
	"github.com/Ideal-Pranav/Career-finder/internal/quiz"
	"github.com/Ideal-Pranav/Career-finder/internal/services"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/Ideal-Pranav/Career-finder/pkg"
	"github.com/gin-gonic/gin"

	sqliterepo "github.com/Ideal-Pranav/Career-finder/internal/repositories/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := sqliterepo.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	repo := sqliterepo.NewRepository(db)

	var cacheSvc cache.CacheService
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		cacheSvc = cache.NewRedisCache(redisClient, logger)
		defer redisClient.Close()
	}

	var publisher events.EventPublisher = events.NoopEventPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.EventTopic,
			Logger:       utils.ToSlogLogger(logger),
		})
		if err != nil {
			log.Fatalf("failed to create event publisher: %v", err)
		}
		publisher = kafkaPublisher
	}
	defer publisher.Close()

	engine, err := quiz.NewEngine(quiz.DefaultBank(), quiz.DefaultCategoryWeights())
	if err != nil {
		log.Fatalf("failed to build scoring engine: %v", err)
	}

	validator := utils.NewValidator()

	serviceManager := services.NewServiceManager(services.ManagerConfig{
		Repo:       repo,
		Engine:     engine,
		Cache:      cacheSvc,
		Publisher:  publisher,
		Validator:  validator,
		Logger:     logger,
		MatchLimit: cfg.MatchLimit,
		CacheTTL:   time.Duration(cfg.CacheTTLSec) * time.Second,
	})

	// Catalog integrity pass: warn about bank career IDs missing from the
	// catalog, but never refuse to start over them.
	if err := serviceManager.Quiz().ValidateBankAgainstCatalog(context.Background()); err != nil {
		logger.Warn("question bank validation skipped", "error", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, validator, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("career-finder listening",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"questions", engine.Bank().Len())

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
