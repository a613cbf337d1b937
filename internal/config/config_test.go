package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cards.csv", cfg.CardsPath)
	assert.Equal(t, "font.ttf", cfg.FontPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FLASHDECK_CARDS_PATH", "decks/biology.csv")
	t.Setenv("FLASHDECK_LOG_LEVEL", "debug")
	t.Setenv("FLASHDECK_WINDOW_WIDTH", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "decks/biology.csv", cfg.CardsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "untouched keys keep their defaults")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "cards_path: study/cards.csv\nwindow:\n  width: 640\n  height: 480\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flashdeck.yaml"), []byte(yaml), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "study/cards.csv", cfg.CardsPath)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flashdeck.yaml"), []byte("log_level: warn\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("FLASHDECK_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "unknown log level",
			envVars: map[string]string{"FLASHDECK_LOG_LEVEL": "loud"},
		},
		{
			name:    "non-positive window width",
			envVars: map[string]string{"FLASHDECK_WINDOW_WIDTH": "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}
