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

	"github.com/boutique-jeux/boutique-api/handlers"
	"github.com/boutique-jeux/boutique-api/internal/config"
	"github.com/boutique-jeux/boutique-api/internal/customer"
	"github.com/boutique-jeux/boutique-api/internal/database"
	"github.com/boutique-jeux/boutique-api/internal/game"
	"github.com/boutique-jeux/boutique-api/pkg/logger"
	"github.com/boutique-jeux/boutique-api/pkg/metrics"
	"github.com/boutique-jeux/boutique-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging first (controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	r := gin.New()

	// CORS for all origins, then request logging and the catch-all error
	// responder: anything escaping a handler becomes a generic French 500.
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, rec any) {
		logger.Errorf("panic recovered: %v", rec)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Une erreur est survenue sur le serveur"})
	}))
	r.Use(middleware.RequestCounter())

	// Connect to Redis early so the rate-limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional per-IP rate limiter, Redis-backed when configured and available
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimit(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	ctx := context.Background()

	// Connect to MongoDB with retry/backoff to tolerate startup races; fall
	// back to in-memory repositories so the API still serves when the store
	// is unreachable.
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	var gameRepo game.Repository
	var customerRepo customer.Repository
	if errConn != nil {
		logger.Warnf("could not connect to MongoDB after %d attempts (%v) — using in-memory repositories", maxAttempts, errConn)
		client = nil
		gameRepo = game.NewMemoryRepository()
		customerRepo = customer.NewMemoryRepository()
	} else {
		defer func() { _ = client.Disconnect(ctx) }()
		logger.Infof("Connexion à MongoDB établie: %s", cfg.MongoDB.URI)
		db := client.Database(cfg.MongoDB.Database)
		gameRepo = game.NewMongoRepository(db.Collection("games"))
		customerRepo = customer.NewMongoRepository(db.Collection("customers"))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness — 200 only when the backing store answers
	r.GET("/ready", func(c *gin.Context) {
		deps := gin.H{"storage": "memory"}
		if client != nil {
			if err := client.Ping(c.Request.Context(), nil); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": gin.H{"storage": "mongodb", "reachable": false}, "uptime": time.Since(startTime).String()})
				return
			}
			deps["storage"] = "mongodb"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterGameRoutes(r, game.NewService(gameRepo))
	handlers.RegisterCustomerRoutes(r, customer.NewService(customerRepo))
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Serveur en cours d'exécution sur le port %s", cfg.Server.Port)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
