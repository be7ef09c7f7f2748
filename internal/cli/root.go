// Package cli implements the fitplan command, an offline driver for the plan pipeline.
package cli

import (
	"time"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/spf13/cobra"
)

// App holds what the fitplan commands need.
type App struct {
	Generator *training.Generator
	Now       func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "fitplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitplan",
		Short:         "Validate profiles and build weekly training plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newValidateCmd(app),
		newPromptCmd(app),
		newParseCmd(app),
		newFallbackCmd(app),
		newGenerateCmd(app),
	)

	return root
}
