package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Rrens/fitcoach/internal/training"
	"github.com/spf13/cobra"
)

// readInput reads a file argument, or stdin when it is "-" or missing.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}

func readForm(cmd *cobra.Command, args []string) (training.Form, error) {
	var form training.Form
	data, err := readInput(cmd, args)
	if err != nil {
		return form, err
	}
	if err := json.Unmarshal(data, &form); err != nil {
		return form, fmt.Errorf("decoding profile: %w", err)
	}
	return form, nil
}

func readProfile(app *App, cmd *cobra.Command, args []string) (training.Profile, error) {
	form, err := readForm(cmd, args)
	if err != nil {
		return training.Profile{}, err
	}
	return app.Generator.Validator().Normalize(form)
}
