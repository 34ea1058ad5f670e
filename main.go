package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forumhub/forumhub/backend/forum-service/handlers"
	"github.com/forumhub/forumhub/backend/forum-service/internal/config"
	"github.com/forumhub/forumhub/backend/forum-service/internal/content"
	"github.com/forumhub/forumhub/backend/forum-service/internal/credentials"
	"github.com/forumhub/forumhub/backend/forum-service/internal/database"
	"github.com/forumhub/forumhub/backend/forum-service/internal/posting"
	"github.com/forumhub/forumhub/backend/forum-service/internal/sessions"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/logger"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/metrics"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// shared runtime vars used by handlers/readiness
	var sessionsSvc *sessions.Service
	var credsSvc *credentials.Service

	ctx := context.Background()

	// Connect to Redis early so sessions and the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Prefer Redis-based session bindings when available (fast, in-memory)
	if redisClient != nil {
		srepo := sessions.NewRedisRepository(redisClient, "session:", cfg.Auth.SessionTTL)
		sessionsSvc = sessions.NewService(srepo)
		logger.Infof("Using Redis for session bindings")
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	documents := client.Database(cfg.MongoDB.Database).Collection("documents")
	if err := database.EnsureDocumentIndexes(ctx, documents); err != nil {
		logger.Warnf("failed to ensure document indexes: %v", err)
	}

	// Each writer holds its own reference to the store; the session bindings
	// table is shared read-mostly by all request handlers.
	credsSvc = credentials.NewService(credentials.NewMongoUserRepository(documents), cfg.Auth.FallbackSecret)
	contentAgg := content.NewAggregator(content.NewMongoStore(documents, cfg.MongoDB.Timeout))
	postingSvc := posting.NewService(posting.NewMongoMessageRepository(documents, cfg.MongoDB.Timeout))

	// Mongo-backed session bindings when Redis is not configured
	if sessionsSvc == nil {
		sessionsCol := client.Database(cfg.MongoDB.Database).Collection("sessions")
		sessionsSvc = sessions.NewService(sessions.NewMongoRepository(sessionsCol))
		logger.Infof("Using MongoDB for session bindings")
	}

	// Resolve session identity for every request before routing decisions
	r.Use(middleware.SessionIdentity(sessionsSvc, cfg.Auth.CookieName))

	root := r.Group("/")
	handlers.NewAuthHandler(cfg, credsSvc, sessionsSvc).Register(root)
	handlers.NewForumHandler(contentAgg, postingSvc).Register(root)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["storage"] = credsSvc != nil
		deps["sessions"] = sessionsSvc != nil
		if !deps["storage"] || !deps["sessions"] {
			ready = false
		}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting forum service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
