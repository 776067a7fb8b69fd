package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gitgauge/gitgauge/internal/analysis"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	GitHubToken     string        `mapstructure:"github_token"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	CacheSize       int           `mapstructure:"cache_size"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	RateLimitPerMin int           `mapstructure:"rate_limit_per_min"`
}

// Config is the full application configuration: server settings plus the
// scoring tunables. Sources, in increasing precedence: engine defaults,
// optional gitgauge.yaml, GITGAUGE_* environment variables.
type Config struct {
	Server  ServerConfig    `mapstructure:"server"`
	Scoring analysis.Config `mapstructure:"scoring"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("gitgauge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("GITGAUGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{Scoring: analysis.DefaultConfig()}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// GITHUB_TOKEN remains the conventional source for the API token
	if cfg.Server.GitHubToken == "" {
		cfg.Server.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.cache_size", 256)
	v.SetDefault("server.cache_ttl", 15*time.Minute)
	v.SetDefault("server.rate_limit_per_min", 30)
}
