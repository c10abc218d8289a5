// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the recording store.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Open the recording store and bring its schema up to date",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "check",
						Usage: "Also report pitch samples whose recording no longer exists",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// recordingsCommand handles recording store operations
func recordingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "recordings",
		Aliases: []string{"rec"},
		Usage:   "Manage stored voice recordings",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recordings, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "with-file",
						Usage: "Only list recordings that have an audio file",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.RecordingsList,
			},
			{
				Name:  "show",
				Usage: "Show one recording with its pitch samples",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.IntFlag{
						Name:  "per-line",
						Usage: "Pitch samples per output line",
						Value: 10,
					},
				},
				Action: r.RecordingsShow,
			},
			{
				Name:  "save",
				Usage: "Store a recording and its pitch samples",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Recording name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "Audio file the recording was written to",
					},
					&cli.Int64Flag{
						Name:  "size",
						Usage: "Audio file size in bytes",
					},
					&cli.FloatSliceFlag{
						Name:    "pitch",
						Aliases: []string{"p"},
						Usage:   "Pitch sample in Hz (repeatable)",
					},
					&cli.Int64Flag{
						Name:  "date",
						Usage: "Recording date in milliseconds since the epoch (default: now)",
					},
				},
				Action: r.RecordingsSave,
			},
			{
				Name:  "rename",
				Usage: "Change the audio file of a recording (empty clears it)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "file"},
				},
				Action: r.RecordingsRename,
			},
			{
				Name:  "delete",
				Usage: "Delete a recording and its pitch samples",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.RecordingsDelete,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for browsing recordings.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive recordings browser",
		Action:  r.TUI,
	}
}
