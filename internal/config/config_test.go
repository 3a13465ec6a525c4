package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresTokenAndDatabase(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_PATH", "")

	_, err := New()
	require.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DATABASE_PATH", "bot.db")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "yt-dlp", cfg.YTDLPPath)
	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 60*time.Second, cfg.PromptTimeout)
	assert.Empty(t, cfg.SpotifyID)
}
