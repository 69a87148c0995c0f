package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	HTTPAddr    string `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required,uri"`
	JWTSecret   string `mapstructure:"JWT_SECRET" validate:"required,min=16"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	// ChromePath overrides the browser binary used for PDF export.
	ChromePath string `mapstructure:"CHROME_PATH"`

	// FreePlanLimit is the number of resumes a free account may own.
	FreePlanLimit int `mapstructure:"FREE_PLAN_LIMIT" validate:"gte=1"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads .env if present, applies defaults, binds env vars and
// validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("FREE_PLAN_LIMIT", 3)

	keys := []string{
		"HTTP_ADDR",
		"DATABASE_URL",
		"JWT_SECRET",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"CHROME_PATH",
		"FREE_PLAN_LIMIT",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}
