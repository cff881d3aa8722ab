package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backend names accepted by MARKET_STORAGE.
const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StorageBackend string // "redis" | "memory"
	StorageKey     string // key the encoded collection lives under (default "products")

	SeedFile           string        // path to the seed catalog yaml (optional, empty = seeding disabled)
	SeedReloadInterval time.Duration // interval to reload the seed catalog (default: 24h)

	// Redis (only read when StorageBackend is "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict operational endpoints to specific Host headers
	AllowedCIDRS []string // optional, restrict operational endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateLimitBurst  int // token bucket burst per client IP
	RateLimitPerMin int // refill per client IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("MARKET_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MARKET_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("MARKET_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MARKET_PRETTY_LOG", true),

		// Storage
		StorageBackend: getenv("MARKET_STORAGE", StorageRedis),
		StorageKey:     getenv("MARKET_STORAGE_KEY", "products"),

		// Seed catalog
		SeedFile:           getenv("MARKET_SEED_FILE", ""), // Optional, empty = seeding disabled
		SeedReloadInterval: mustDuration("MARKET_SEED_RELOAD_INTERVAL", 24*time.Hour),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("MARKET_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("MARKET_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("MARKET_TRUST_PROXY", false),

		// Rate limiting
		RateLimitBurst:  getenvInt("MARKET_RATE_LIMIT_BURST", 30),
		RateLimitPerMin: getenvInt("MARKET_RATE_LIMIT_PER_MIN", 60),
	}

	switch cfg.StorageBackend {
	case StorageMemory:
		// Nothing else to read; the catalog lives in process memory.
	case StorageRedis:
		cfg.RedisAddr = requireEnv("MARKET_REDIS_ADDR")
		cfg.RedisUser = getenv("MARKET_REDIS_USERNAME", "default")
		cfg.RedisPassword = getenv("MARKET_REDIS_PASSWORD", "")
		cfg.RedisDB = getenvInt("MARKET_REDIS_DB", 0)
		cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
		cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown MARKET_STORAGE backend %q (want %q or %q)",
			cfg.StorageBackend, StorageRedis, StorageMemory))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
