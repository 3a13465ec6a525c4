package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from the environment. A .env file in
// the working directory is honored but not required.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	DatabasePath string `env:"DATABASE_PATH,required,notEmpty"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath  string `env:"LOG_PATH" envDefault:"logs/mordomo.log"`

	// yt-dlp binary, used as fallback resolver for sources the built-in
	// youtube client cannot handle.
	YTDLPPath string `env:"YTDLP_PATH" envDefault:"yt-dlp"`

	// Optional Spotify Web API credentials. When absent the spotify source
	// is simply not registered.
	SpotifyID     string `env:"SPOTIFY_ID"`
	SpotifySecret string `env:"SPOTIFY_SECRET"`

	// Voice connection is released after the session stays idle this long.
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"5m"`

	// Default timeout for interactive question/answer exchanges.
	PromptTimeout time.Duration `env:"PROMPT_TIMEOUT" envDefault:"60s"`
}

// New loads .env (if present) and parses the environment. It returns an
// error instead of a partially filled config when a mandatory variable is
// missing, so main can fail fast with a clear message.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
