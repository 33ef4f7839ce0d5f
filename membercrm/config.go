package membercrm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds client settings read from the environment.
type Config struct {
	InstanceURL string        `env:"MEMBERCRM_INSTANCE_URL,required,notEmpty"`
	AccessToken string        `env:"MEMBERCRM_ACCESS_TOKEN,required,notEmpty"`
	PageSize    int           `env:"MEMBERCRM_PAGE_SIZE" envDefault:"20"`
	UserAgent   string        `env:"MEMBERCRM_USER_AGENT"`
	Timeout     time.Duration `env:"MEMBERCRM_TIMEOUT" envDefault:"30s"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PageSize < 0 {
		return Config{}, fmt.Errorf("MEMBERCRM_PAGE_SIZE must not be negative, got %d", cfg.PageSize)
	}
	return cfg, nil
}

// Credentials implements CredentialProvider with the configured token.
func (c Config) Credentials(context.Context) (string, string, error) {
	return c.AccessToken, c.InstanceURL, nil
}

// NewClient builds a client from the configuration. Options are applied
// after the configured values, so they win.
func (c Config) NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	httpClient := &http.Client{Timeout: c.Timeout}
	base := []ClientOption{WithDefaultPageSize(c.PageSize), WithUserAgent(c.UserAgent)}
	return NewClientWithCredentials(ctx, httpClient, c, append(base, opts...)...)
}

// NewClientFromEnv loads the configuration from the environment and returns
// a client for it.
func NewClientFromEnv(ctx context.Context, opts ...ClientOption) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.NewClient(ctx, opts...)
}
