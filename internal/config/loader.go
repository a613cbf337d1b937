package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional flashdeck.yaml in the
// working directory and from FLASHDECK_-prefixed environment
// variables. Environment variables take precedence over file values,
// and both over the built-in defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("cards_path", "cards.csv")
	v.SetDefault("font_path", "font.ttf")
	v.SetDefault("log_level", "info")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)

	v.SetConfigName("flashdeck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FLASHDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
