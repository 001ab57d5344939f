package commands

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrevu/internal/app"
	"github.com/colonyops/hrevu/internal/core/notify"
	"github.com/colonyops/hrevu/internal/render/summary"
	"github.com/colonyops/hrevu/internal/tui"
	"github.com/colonyops/hrevu/pkg/iojson"
)

type TuiCmd struct {
	flags *Flags

	// flags
	plain bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "plain",
			Usage:       "print the completion summary as plain markdown",
			Destination: &cmd.plain,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config
	loc := cmd.flags.Loc

	backend, err := cmd.flags.client()
	if err != nil {
		return err
	}

	bus := notify.NewBus()
	ctrl := app.New(backend, bus, loc, app.Options{
		Hide:   cfg.TUI.Hide,
		Theme:  cmd.flags.Theme(),
		Themes: cmd.flags.prefs(),
	})

	m := tui.New(ctx, tui.Options{
		Controller: ctrl,
		Bus:        bus,
		TimeFormat: cfg.TUI.TimeFormat,
		MaxToasts:  cfg.TUI.MaxToasts,
		Toasts: tui.ToastDurations{
			Success: cfg.TUI.ToastSuccess,
			Error:   cfg.TUI.ToastError,
		},
		ShowSidebar: cfg.TUI.Sidebar,
		Icons:       cfg.TUI.Icons,
	})

	log.Info().Str("url", backend.BaseURL()).Msg("starting review tui")

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	model, ok := finalModel.(tui.Model)
	if !ok || !model.Completed() {
		return nil
	}

	s := summary.Build(model.Snapshot(), loc)
	if cmd.flags.JSON {
		return iojson.Write(s)
	}
	return summary.Write(os.Stdout, s, summary.Options{Loc: loc, Plain: cmd.plain})
}
