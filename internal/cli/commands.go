package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile.json]",
		Short: "Check a profile against the measurement bounds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := readForm(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			profile, err := app.Generator.Validator().Normalize(form)
			var verr *training.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprint(out, formatErrors(verr.Errors))
				return verr
			}
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatProfile(profile))
			return nil
		},
	}
}

func newPromptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [profile.json]",
		Short: "Print the oracle prompt built from a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := readProfile(app, cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), training.BuildPrompt(profile))
			return nil
		},
	}
}

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [reply.md]",
		Short: "Parse an oracle reply into training days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			days, ok := training.Parse(string(data))
			if !ok {
				return training.ErrNoDaysParsed
			}
			fmt.Fprint(cmd.OutOrStdout(), formatDays(days))
			return nil
		},
	}
}

func newFallbackCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fallback [profile.json]",
		Short: "Build the offline plan for a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := readProfile(app, cmd, args)
			if err != nil {
				return err
			}
			return printPlan(cmd, training.Fallback(profile, app.now()), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

func newGenerateCmd(app *App) *cobra.Command {
	var (
		asJSON    bool
		showTrace bool
	)

	cmd := &cobra.Command{
		Use:   "generate [profile.json]",
		Short: "Run the full pipeline against the configured oracle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := readForm(cmd, args)
			if err != nil {
				return err
			}

			res, err := app.Generator.Generate(cmd.Context(), form)
			var verr *training.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprint(cmd.OutOrStdout(), formatErrors(verr.Errors))
				return verr
			}
			if err != nil {
				return err
			}

			if showTrace {
				fmt.Fprint(cmd.ErrOrStderr(), formatTrace(res.Trace))
				if res.Fallback() {
					fmt.Fprintln(cmd.ErrOrStderr(), styleYellow.Render("fallback: "+res.FallbackReason.Error()))
				}
			}
			return printPlan(cmd, res.Plan, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Print the pipeline stages to stderr")
	return cmd
}

func printPlan(cmd *cobra.Command, plan *training.Plan, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	fmt.Fprint(out, formatPlan(plan))
	return nil
}
