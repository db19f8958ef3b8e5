package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotcat/internal/formatter"
	"github.com/desertthunder/spotcat/internal/services"
	"github.com/desertthunder/spotcat/internal/shared"
	"github.com/urfave/cli/v3"
)

// Track fetches a single track and prints it in the requested format.
//
// A track the catalog reports as absent is a user-facing error here even
// though the service layer treats it as a normal outcome.
func (r *Runner) Track(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Infof("fetching track %s", id)

	track, err := r.catalog.Track(ctx, id)
	if err != nil {
		return err
	}
	if track == nil {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, cmd.Bool("pretty"))
	}

	switch cmd.String("format") {
	case "csv":
		data, err := formatter.TrackToCSV(track)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	case "markdown":
		return r.writeBytes(formatter.TrackToMarkdown(track))
	default:
		return r.writeBytes(formatter.TrackToText(track))
	}
}

// Artist fetches a single artist and prints it in the requested format.
func (r *Runner) Artist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Infof("fetching artist %s", id)

	artist, err := r.catalog.Artist(ctx, id)
	if err != nil {
		return err
	}
	if artist == nil {
		return fmt.Errorf("%w: %s", shared.ErrArtistNotFound, id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(artist, cmd.Bool("pretty"))
	}

	switch cmd.String("format") {
	case "csv":
		data, err := formatter.ArtistToCSV(artist)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	case "markdown":
		return r.writeBytes(formatter.ArtistToMarkdown(artist))
	default:
		return r.writeBytes(formatter.ArtistToText(artist))
	}
}

// ValidateTracks validates a list of track IDs and prints the resolved subset.
func (r *Runner) ValidateTracks(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}
	return r.validate(ctx, cmd, r.catalog.ValidateTracks)
}

// ValidateArtists validates a list of artist IDs and prints the resolved subset.
func (r *Runner) ValidateArtists(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}
	return r.validate(ctx, cmd, r.catalog.ValidateArtists)
}

func (r *Runner) validate(ctx context.Context, cmd *cli.Command, fn func(context.Context, []string) (map[string]services.EntryRef, error)) error {
	ids := cmd.Args().Slice()
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one id", shared.ErrMissingArgument)
	}

	r.logger.Infof("validating %d ids", len(ids))

	results, err := fn(ctx, ids)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	if cmd.String("format") == "csv" {
		data, err := formatter.ValidationToCSV(results)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	}

	if err := r.writeBytes(formatter.ValidationToText(results)); err != nil {
		return err
	}
	return r.writePlain("%d of %d ids valid\n", len(results), len(ids))
}
