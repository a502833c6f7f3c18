// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func categoryFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "Archive category (march or music)",
		Value:   "march",
	}
}

// listCommand prints a category's uploaded files
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List uploaded files in a category",
		Flags: []cli.Flag{
			categoryFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format (text, csv, markdown)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:    "save",
				Aliases: []string{"s"},
				Usage:   "Save a CSV export with the given base filename",
			},
		},
		Action: r.List,
	}
}

// favoritesCommand prints a category's curated favorites
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "List curated favorites in a category",
		Flags: []cli.Flag{
			categoryFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format (text, csv, markdown)",
				Value: "text",
			},
		},
		Action: r.Favorites,
	}
}

// uploadCommand sends a local media file to the archive
func uploadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Upload an mp3 or mp4 file to the archive",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			categoryFlag(),
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Display name (defaults to the filename without extension)",
			},
		},
		Action: r.Upload,
	}
}

// deleteCommand removes an uploaded file
func deleteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Aliases: []string{"rm"},
		Usage:   "Delete an uploaded file by id",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			categoryFlag(),
		},
		Action: r.Delete,
	}
}

// playCommand plays an uploaded file from the terminal
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Play an uploaded file (audio inline, video in the system player)",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			categoryFlag(),
		},
		Action: r.Play,
	}
}

// serveCommand runs the dev media server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the media directories over HTTP with Range support",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations for configuration and the cache database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the listing cache database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Scaffold a config.toml from the embedded template",
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

// marchesCommand launches the marches page TUI
func marchesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "marches",
		Usage:  "Open the interactive marches page",
		Action: r.Marches,
	}
}

// musicCommand launches the music page TUI
func musicCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "music",
		Usage:  "Open the interactive music page",
		Action: r.Music,
	}
}
