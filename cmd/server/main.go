package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"flightops360/hangar/internal/api"
	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/config"
	"flightops360/hangar/internal/db"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/mailer"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/middleware"
	"flightops360/hangar/internal/providers"
	"flightops360/hangar/internal/routes"
	"flightops360/hangar/internal/storage"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("FlightOps360 starting up",
		"environment", cfg.AppEnv,
		"store", cfg.StoreDriver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	st, err := db.OpenStore(ctx, cfg, metricsReg)
	if err != nil {
		logging.Fatal("Failed to open document store", "driver", cfg.StoreDriver, "error", err)
	}
	defer st.Close()
	logging.Info("Document store ready", "driver", cfg.StoreDriver)

	collab := api.Collaborators{
		Cache:    common.NewMeteredCache(newCache(cfg), metricsReg),
		CacheTTL: cfg.CacheTTL,
		Metrics:  metricsReg,
	}
	defer collab.Cache.Close()

	if cfg.S3Bucket != "" {
		blobs, err := storage.NewS3Storage(ctx, storage.S3Options{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logging.Fatal("Failed to configure blob storage", "bucket", cfg.S3Bucket, "error", err)
		}
		collab.Blobs = blobs
	} else {
		logging.Warn("S3_BUCKET not set, document uploads disabled")
	}

	mail, err := mailer.NewSender(ctx, cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, cfg.GmailSender)
	if err != nil {
		logging.Fatal("Failed to configure mail sender", "error", err)
	}
	collab.Mail = mail

	if cfg.LLMAPIKey != "" {
		collab.LLM = providers.NewLLMProvider(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		logging.Warn("LLM_API_KEY not set, generation endpoints disabled")
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logging.Fatal("Failed to configure tokens", "error", err)
	}

	deps := api.InitDependencies(st, collab, tokens)
	if err := deps.Services.Admin.EnsureSystemRoles(ctx); err != nil {
		logging.Fatal("Failed to create system roles", "error", err)
	}

	opts := routes.Options{AllowedOrigins: cfg.CORSOrigins}
	if cfg.RateLimitEnabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.RegisterRoutes(deps, opts),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err)
	}
}

// newCache picks Redis when REDIS_HOST is set and the in-memory cache
// otherwise.
func newCache(cfg *config.Config) common.CacheInterface {
	if cfg.RedisHost == "" {
		logging.Info("Using in-memory cache")
		return common.NewCacheService(int(cfg.CacheTTL.Seconds()), 600)
	}
	port, err := strconv.Atoi(cfg.RedisPort)
	if err != nil {
		logging.Warn("Invalid REDIS_PORT, using 6379", "value", cfg.RedisPort)
		port = 6379
	}
	client := common.NewRedisClient(cfg.RedisHost, port, cfg.RedisPassword, 0)
	return common.NewRedisCacheService(client, "flightops:")
}
