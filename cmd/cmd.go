// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (text, csv, markdown)",
			Value:   "text",
		},
	}
}

// trackCommand fetches a single track by ID
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Fetch track metadata by ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags:  outputFlags(),
		Action: r.Track,
	}
}

// artistCommand fetches a single artist by ID
func artistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artist",
		Usage: "Fetch artist metadata by ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags:  outputFlags(),
		Action: r.Artist,
	}
}

// validateCommand handles best-effort batch validation of ID lists
func validateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"val"},
		Usage:   "Validate lists of catalog IDs",
		Commands: []*cli.Command{
			{
				Name:      "tracks",
				Usage:     "Validate track IDs, printing only the ones that resolve",
				ArgsUsage: "<id> [<id>...]",
				Flags:     outputFlags(),
				Action:    r.ValidateTracks,
			},
			{
				Name:      "artists",
				Usage:     "Validate artist IDs, printing only the ones that resolve",
				ArgsUsage: "<id> [<id>...]",
				Flags:     outputFlags(),
				Action:    r.ValidateArtists,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Acquire an access token and report its expiry",
				Action: r.AuthStatus,
			},
		},
	}
}

// setupCommand handles setup operations for configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
