package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dastodo/market/internal/config"
	"github.com/dastodo/market/internal/httpserver"
	"github.com/dastodo/market/internal/httpserver/deps"
	"github.com/dastodo/market/internal/logger"
	"github.com/dastodo/market/internal/redis"
	"github.com/dastodo/market/internal/scheduler"
	"github.com/dastodo/market/internal/storage"
	"github.com/dastodo/market/internal/store"
	"github.com/dastodo/market/internal/version"
)

type App struct {
	cfg          *config.Config
	logger       logger.Logger
	server       *httpserver.Server
	redisClient  *goredis.Client
	seedReloader *scheduler.SeedReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the storage medium - fail fast if Redis is unavailable
	var medium storage.Medium
	var redisClient *goredis.Client
	switch cfg.StorageBackend {
	case config.StorageMemory:
		loggerClient.Warn("using in-memory storage, listings will not survive a restart")
		medium = storage.NewMemory()
	default:
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		medium = storage.NewRedis(client, cfg.StorageKey)
	}

	// The store is the only component touching the medium from here on.
	st := store.New(medium)

	// Initialize the seed reloader (if a seed file is configured)
	var seedReloader *scheduler.SeedReloader
	var seedReloadTrigger chan struct{}
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured, initializing seed reloader",
			logger.String("file", cfg.SeedFile))
		seedReloadTrigger = make(chan struct{}, 1)
		seedReloader = scheduler.NewSeedReloader(
			cfg.SeedFile,
			st,
			loggerClient,
			cfg.SeedReloadInterval,
			seedReloadTrigger,
		)
	} else {
		loggerClient.Info("seed file not configured, starter catalog disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		Store:             st,
		Medium:            medium,
		StorageBackend:    cfg.StorageBackend,
		SeedFile:          cfg.SeedFile,
		SeedReloadTrigger: seedReloadTrigger,
		RateLimitBurst:    cfg.RateLimitBurst,
		RateLimitPerMin:   cfg.RateLimitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:          cfg,
		logger:       loggerClient,
		server:       server,
		redisClient:  redisClient,
		seedReloader: seedReloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Market v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Market %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start seed reloader (seeds the catalog and starts periodic refresh)
	if a.seedReloader != nil {
		if err := a.seedReloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start seed reloader: %w", err)
		}
		a.logger.Info("seed reloader started",
			logger.Duration("interval", a.cfg.SeedReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop seed reloader
	if a.seedReloader != nil {
		a.seedReloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Market stopped cleanly")
	return nil
}
