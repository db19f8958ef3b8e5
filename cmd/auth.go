package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/spotcat/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthStatus forces a token acquisition and reports the cached token's expiry.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	if _, err := r.spotify.AccessToken(ctx); err != nil {
		return err
	}

	expiry, remaining, cached := r.spotify.TokenStatus()
	if !cached {
		return fmt.Errorf("%w: token expired immediately after acquisition", shared.ErrAuthFailed)
	}

	return r.writeOK("Token valid until %s (%s remaining)", expiry.Format(time.RFC3339), remaining.Round(time.Second))
}

// SetupConfig writes the embedded example configuration to disk.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	return r.writeOK("Wrote example config to %s", path)
}
