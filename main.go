package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrevu/internal/commands"
	"github.com/colonyops/hrevu/internal/core/config"
	"github.com/colonyops/hrevu/internal/core/logging"
	"github.com/colonyops/hrevu/internal/core/styles"
	"github.com/colonyops/hrevu/pkg/iojson"
	"github.com/colonyops/hrevu/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "hrevu",
		Usage:     "Review a diff in the terminal and leave comments",
		UsageText: "hrevu [global options] [command [command options]]",
		Description: `hrevu is the reviewer side of a local code review server. It loads the
files, diff lines, and comments from the server, lets you comment on lines,
files, or the review as a whole, and marks the review complete.

Run 'hrevu' with no arguments to open the interactive reviewer.
Run 'hrevu export' to save the review as HTML or JSON.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("HREVU_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/hrevu.log)",
				Sources:     cli.EnvVars("HREVU_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("HREVU_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("HREVU_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "url",
				Usage:       "review server address (overrides server.url)",
				Sources:     cli.EnvVars("HREVU_URL"),
				Destination: &flags.ServerURL,
			},
			&cli.StringFlag{
				Name:        "locale",
				Usage:       "interface language (en, zh); defaults to the environment",
				Sources:     cli.EnvVars("HREVU_LOCALE"),
				Destination: &flags.Locale,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print results and errors as JSON",
				Destination: &flags.JSON,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Always log to a file; the terminal belongs to the TUI
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.LogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			if err := flags.Apply(cfg); err != nil {
				return ctx, err
			}

			// Summary and export styling follow the active theme
			if palette, ok := styles.GetPalette(flags.Theme()); ok {
				styles.SetTheme(palette)
			}

			logging.Component("main").Debug().
				Str("config", flags.ConfigPath).
				Str("data_dir", cfg.DataDir).
				Str("url", cfg.Server.URL).
				Str("locale", string(flags.Loc.Lang())).
				Msg("configuration loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewExportCmd(flags).Register(app)
	app = commands.NewCompleteCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'hrevu --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		if flags.JSON {
			_ = iojson.WriteError(os.Stderr, err.Error(), nil)
		} else {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, err.Error())
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
