package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrevu/internal/core/review"
	"github.com/colonyops/hrevu/internal/render/htmlreport"
	"github.com/colonyops/hrevu/pkg/iojson"
)

const (
	formatHTML = "html"
	formatJSON = "json"
)

type ExportCmd struct {
	flags *Flags

	// flags
	format string
	output string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export the review as a standalone HTML page or JSON",
		UsageText: "hrevu export [--format html|json] [-o file]",
		Description: `Fetches the current review from the server and writes it out.

The HTML page shows every file's diff with inline comment threads and the full
comment list. Comment bodies are rendered as markdown. JSON output is the raw
review payload.

Examples:
  hrevu export -o review.html
  hrevu export --format json | jq '.comments | length'`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (html, json)",
				Value:       formatHTML,
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to file instead of stdout",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, _ *cli.Command) error {
	if cmd.format != formatHTML && cmd.format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", cmd.format, formatHTML, formatJSON)
	}

	backend, err := cmd.flags.client()
	if err != nil {
		return err
	}

	rev, err := backend.Review(ctx)
	if err != nil {
		return fmt.Errorf("fetch review: %w", err)
	}

	if cmd.output == "" {
		return cmd.write(os.Stdout, rev)
	}

	if err := writeFileAtomic(cmd.output, func(w io.Writer) error { return cmd.write(w, rev) }); err != nil {
		return fmt.Errorf("write %s: %w", cmd.output, err)
	}

	log.Info().Str("file", cmd.output).Str("format", cmd.format).Int("comments", len(rev.Comments)).Msg("review exported")
	fmt.Fprintln(os.Stderr, cmd.output)
	return nil
}

func (cmd *ExportCmd) write(w io.Writer, rev review.Review) error {
	if cmd.format == formatJSON {
		return iojson.WriteWith(w, rev)
	}

	cfg := cmd.flags.Config
	return htmlreport.Render(w, rev, htmlreport.Options{
		Loc:        cmd.flags.Loc,
		Theme:      cmd.flags.Theme(),
		TimeFormat: cfg.TUI.TimeFormat,
		Generated:  time.Now(),
	})
}

// writeFileAtomic writes through a temporary file in the target directory
// and renames it into place once fn succeeds.
func writeFileAtomic(path string, fn func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := fn(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
