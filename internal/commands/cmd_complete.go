package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrevu/internal/core/i18n"
	"github.com/colonyops/hrevu/pkg/iojson"
)

type CompleteCmd struct {
	flags *Flags
}

// NewCompleteCmd creates a new complete command
func NewCompleteCmd(flags *Flags) *CompleteCmd {
	return &CompleteCmd{flags: flags}
}

// Register adds the complete command to the application
func (cmd *CompleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "complete",
		Usage:     "Mark the review as complete without opening the TUI",
		UsageText: "hrevu complete [--json]",
		Description: `Sends the completion request to the server and prints the number of
comments it recorded. With --json the server's answer is printed as JSON.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *CompleteCmd) run(ctx context.Context, _ *cli.Command) error {
	backend, err := cmd.flags.client()
	if err != nil {
		return err
	}

	done, err := backend.Complete(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.flags.Loc.T(i18n.FailedToComplete), err)
	}

	log.Info().Int("comments", done.CommentCount).Msg("review completed")

	if cmd.flags.JSON {
		return iojson.Write(done)
	}
	fmt.Println(cmd.flags.Loc.T(i18n.ReviewComplete, done.CommentCount))
	return nil
}
