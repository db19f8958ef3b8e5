package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/spotcat/internal/services"
	"github.com/desertthunder/spotcat/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	config.ApplyEnv()

	timeout := time.Duration(config.Client.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if config.Client.RateLimitPerSecond > 0 {
		burst := config.Client.RateLimitBurst
		if burst <= 0 {
			burst = config.Client.RateLimitPerSecond
		}
		limiter = rate.NewLimiter(rate.Limit(config.Client.RateLimitPerSecond), burst)
	}

	spotify := services.NewSpotifyService(services.SpotifyOpts{
		Credentials: config.Credentials.Spotify.Map(),
		BaseURL:     config.Client.BaseURL,
		TokenURL:    config.Client.TokenURL,
		HTTPClient:  &http.Client{Timeout: timeout},
		Limiter:     limiter,
		Logger:      logger,
	})

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: spotify,
		Spotify: spotify,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "spotcat",
		Usage:    "Look up and validate Spotify track & artist metadata",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
