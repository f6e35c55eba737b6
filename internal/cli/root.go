package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/landbridge/michrazim/internal/core/config"
	"github.com/landbridge/michrazim/internal/infra/cache"
	"github.com/landbridge/michrazim/internal/infra/upstream"
	"github.com/landbridge/michrazim/internal/resolve"
	"github.com/landbridge/michrazim/internal/search"
	"github.com/landbridge/michrazim/internal/service"
)

var (
	cfgPath string
	isDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "michrazim",
	Short: "Israeli Land Authority tender query bridge",
	Long:  `Michrazim bridges the Israeli Land Authority tender API into a structured, rate-limited query service.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
}

// loadConfig loads the YAML config (or defaults) and initializes
// logging. Every subcommand calls this first.
func loadConfig() *config.AppConfig {
	_ = godotenv.Load()

	var (
		cfg *config.AppConfig
		err error
	)
	if cfgPath == "" {
		cfg = config.Default()
	} else if cfg, err = config.Load(cfgPath); err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})

	return cfg
}

// buildService wires the client-access stack: transport, process-wide
// limiter, retrier, cache, resolver, engine. The limiter instance is
// shared by every operation the returned service performs.
func buildService(cfg *config.AppConfig) (*service.Service, func()) {
	transport := upstream.NewTransport(cfg.Upstream.BaseURL, cfg.Upstream.RequestTimeout.Std())
	limiter := upstream.NewLimiter(cfg.Upstream.RateLimitDelay.Std())
	retrier := upstream.NewRetrier(limiter, upstream.RetryConfig{
		MaxRetries:   cfg.Upstream.MaxRetries,
		InitialDelay: cfg.Upstream.RetryBaseDelay.Std(),
		MaxDelay:     cfg.Upstream.RetryMaxDelay.Std(),
	})

	var store cache.Store
	cleanup := func() { transport.Close() }
	if cfg.Cache.Redis.URL != "" {
		redisStore, err := cache.NewRedisStore(cfg.Cache.Redis)
		if err != nil {
			slog.Error("Failed to connect to redis cache", "error", err)
			os.Exit(1)
		}
		store = redisStore
		cleanup = func() {
			transport.Close()
			_ = redisStore.Close()
		}
	}

	refCache := cache.New(store)
	resolver := resolve.NewResolver(refCache, nil, cfg.Cache.TTL.Std(), cfg.Resolver.MatchThreshold)
	engine := search.NewEngine(transport, retrier)

	return service.New(engine, resolver, transport, retrier), cleanup
}
