package main

import (
	"LineFinder/internal"
	"io"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Exit codes used with --exit-status. Without it the process exits 0.
const (
	exitNotFound    = 1
	exitOpenFailure = 2
	exitScanError   = 3
)

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:                   "LineFinder",
		Usage:                  "Print the lines of a file that contain a literal pattern",
		UseShortOptionHandling: true,
		Writer:                 stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "f",
				Aliases:   []string{"file"},
				Usage:     "Path to the file to search, '-' for stdin (required)",
				Required:  true,
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:     "p",
				Aliases:  []string{"pattern"},
				Usage:    "Literal substring to search for (required, may be empty)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "n",
				Aliases: []string{"line-number"},
				Usage:   "Prefix each printed line with its line number",
			},
			&cli.BoolFlag{
				Name:    "I",
				Aliases: []string{"ignore-case"},
				Usage:   "Match ignoring ASCII case",
			},
			&cli.IntFlag{
				Name:    "m",
				Aliases: []string{"max-count"},
				Usage:   "Stop after N printed matches (0 - unlimited, negative - stop at first match and print nothing)",
				Value:   0,
			},
			&cli.BoolFlag{
				Name:    "z",
				Aliases: []string{"decompress"},
				Usage:   "Decompress the input if it is gz, bz2, xz, zst, lz4, br or sz",
			},
			&cli.BoolFlag{
				Name:  "exit-status",
				Usage: "Exit 1 when nothing matched, 2 when the file cannot be opened",
			},
			&cli.StringFlag{
				Name:    "logfile",
				Usage:   "Write logs into file instead of stderr",
				EnvVars: []string{"LINEFINDER_LOGFILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "warn",
				EnvVars: []string{"LINEFINDER_LOG_LEVEL"},
			},
		},
		Action: func(c *cli.Context) error {
			internal.InitLogger(c.String("logfile"), c.String("log-level"))

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := internal.SearchOptions{
				FilePath:        c.String("f"),
				Pattern:         c.String("p"),
				ShowLineNumber:  c.Bool("n"),
				CaseInsensitive: c.Bool("I"),
				MaxMatches:      c.Int("m"),
				Decompress:      c.Bool("z"),
			}

			out, err := internal.Search(ctx, opts, c.App.Writer)
			if err != nil {
				if ctx.Err() != nil {
					logrus.Warn("Search cancelled")
				} else {
					logrus.WithError(err).Error("Search failed")
				}
				return cli.Exit(err.Error(), exitScanError)
			}

			if !c.Bool("exit-status") {
				return nil
			}
			switch {
			case out.OpenFailed:
				return cli.Exit("", exitOpenFailure)
			case !out.Found:
				return cli.Exit("", exitNotFound)
			}
			return nil
		},
	}
}
