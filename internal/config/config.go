package config

// Config holds all application settings.
type Config struct {
	// CardsPath is the CSV file the deck is loaded from.
	CardsPath string `mapstructure:"cards_path" validate:"required"`
	// FontPath names an optional TTF file used for rendering. A
	// missing or broken font is never fatal.
	FontPath string       `mapstructure:"font_path"`
	LogLevel string       `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Window   WindowConfig `mapstructure:"window"`
}

// WindowConfig controls the initial window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width" validate:"required,gt=0"`
	Height int `mapstructure:"height" validate:"required,gt=0"`
}
