package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/landbridge/michrazim/internal/infra/cache"
	"github.com/landbridge/michrazim/internal/infra/upstream"
	"github.com/landbridge/michrazim/internal/resolve"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = upstream.DefaultBaseURL
	}
	if cfg.Upstream.RateLimitDelay == 0 {
		cfg.Upstream.RateLimitDelay = Duration(1 * time.Second)
	}
	if cfg.Upstream.RequestTimeout == 0 {
		cfg.Upstream.RequestTimeout = Duration(30 * time.Second)
	}
	if cfg.Upstream.MaxRetries == 0 {
		cfg.Upstream.MaxRetries = upstream.DefaultRetryConfig.MaxRetries
	}
	if cfg.Upstream.RetryBaseDelay == 0 {
		cfg.Upstream.RetryBaseDelay = Duration(upstream.DefaultRetryConfig.InitialDelay)
	}
	if cfg.Upstream.RetryMaxDelay == 0 {
		cfg.Upstream.RetryMaxDelay = Duration(upstream.DefaultRetryConfig.MaxDelay)
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = Duration(cache.DefaultTTL)
	}
	if cfg.Resolver.MatchThreshold == 0 {
		cfg.Resolver.MatchThreshold = resolve.DefaultThreshold
	}
}
