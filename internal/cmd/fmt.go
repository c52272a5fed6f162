package cmd

import (
	"fmt"

	"simpleprops/props"

	"github.com/spf13/cobra"
)

// newFmtCmd creates the fmt command.
func newFmtCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the file in canonical form",
		Long: `Rewrite the properties file in canonical form.

Properties are written as "key = value" and comments as "# text". With
--encrypt every value is encrypted, which is how a plain file is converted.

Examples:
  props fmt
  props --encrypt fmt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.File.Update(func(*props.Store) error { return nil }); err != nil {
				return fmt.Errorf("formatting: %w", err)
			}

			fmt.Fprintf(app.Out, "%s Formatted %s\n", app.SuccessColor("✓"), app.File.Path())
			return nil
		},
	}

	return cmd
}
