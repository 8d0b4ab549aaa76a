package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Marketplace MarketplaceConfig
	Assist      AssistConfig
	CORS        CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PARTDEPOT_APP_ENV" required:"true"`
	Port         string `envconfig:"PARTDEPOT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PARTDEPOT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PARTDEPOT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type MarketplaceConfig struct {
	// AutoApproveSellers skips admin moderation on registration. Demo
	// shortcut only; not a contract buyers should rely on.
	AutoApproveSellers bool `envconfig:"PARTDEPOT_AUTO_APPROVE_SELLERS" default:"false"`
}

type AssistConfig struct {
	BaseURL string `envconfig:"PARTDEPOT_ASSIST_BASE_URL"`
	APIKey  string `envconfig:"PARTDEPOT_ASSIST_API_KEY"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PARTDEPOT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
