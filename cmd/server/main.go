package main

import (
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"social-service/internal/application/services"
	"social-service/internal/config"
	"social-service/internal/delivery/handler"
	"social-service/internal/delivery/router"
	"social-service/internal/infrastructure/db/postgres"
	"social-service/internal/infrastructure/logger"
	"social-service/internal/infrastructure/ratelimit"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	appLogger, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if cfg.DatabaseDSN == "" {
		appLogger.Fatal("DATABASE_DSN is required")
	}

	db, err := postgres.Connect(cfg.DatabaseDSN)
	if err != nil {
		appLogger.Fatal("failed to connect to database", "error", err)
	}

	memberRepo := postgres.NewMemberRepository(db)
	postRepo := postgres.NewPostRepository(db)
	followRepo := postgres.NewFollowRepository(db)

	memberService := services.NewMemberService(memberRepo, appLogger)
	postService := services.NewPostService(postRepo, memberService, appLogger)
	followService := services.NewFollowService(followRepo, memberService, appLogger)
	feedService := services.NewFeedService(followService, postService, appLogger)

	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
	} else {
		limiter = ratelimit.NewLocalLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	}

	e := router.New(router.Handlers{
		Member: handler.NewMemberHandler(memberService),
		Post:   handler.NewPostHandler(postService, feedService),
		Follow: handler.NewFollowHandler(followService),
		Health: handler.NewHealthHandler(db),
	}, appLogger, limiter)

	appLogger.Info("server starting", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		appLogger.Fatal("server stopped", "error", err)
	}
}
