package config

import (
	"fmt"
	"time"

	"github.com/landbridge/michrazim/internal/infra/cache"
)

// Duration is a time.Duration that decodes from YAML either as a
// duration string ("250ms", "1s") or as a number of seconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var secs float64
	if err := unmarshal(&secs); err != nil {
		return fmt.Errorf("duration must be a string or seconds: %w", err)
	}
	*d = Duration(time.Duration(secs * float64(time.Second)))
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	Resolver ResolverConfig `yaml:"resolver"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds the health/metrics HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info
}

// UpstreamConfig holds settings for the Michrazim API client.
type UpstreamConfig struct {
	BaseURL        string   `yaml:"base_url"`
	RateLimitDelay Duration `yaml:"rate_limit_delay"`
	RequestTimeout Duration `yaml:"request_timeout"`
	MaxRetries     int      `yaml:"max_retries"`
	RetryBaseDelay Duration `yaml:"retry_base_delay"`
	RetryMaxDelay  Duration `yaml:"retry_max_delay"`
}

// CacheConfig holds reference-data cache settings. Redis is optional;
// when its URL is empty the in-memory store backs the cache.
type CacheConfig struct {
	TTL   Duration          `yaml:"ttl"`
	Redis cache.RedisConfig `yaml:"redis"`
}

// ResolverConfig holds settlement resolver tuning.
type ResolverConfig struct {
	MatchThreshold float64 `yaml:"match_threshold"`
}
