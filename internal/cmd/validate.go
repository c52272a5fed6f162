package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate command.
func newValidateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check settings and the properties file",
		Long: `Check that the settings are usable and the properties file parses.

Malformed lines, duplicate keys and values that fail to decrypt are
reported with their line number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			// Get already parsed the file once; re-read in case it changed.
			if err := app.File.Reload(); err != nil {
				return err
			}
			n := len(app.File.Store().Keys())

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"file":       app.File.Path(),
					"properties": n,
					"valid":      true,
				})
			}
			fmt.Fprintf(app.Out, "%s %s: %d properties\n", app.SuccessColor("✓"), app.File.Path(), n)
			return nil
		},
	}

	return cmd
}
