package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"simpleprops/props"

	"github.com/spf13/cobra"
)

// newSetCmd creates the set command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a property value",
		Long: `Set a property to a value.

An existing property is updated in place, keeping its position and the
comments around it. A new property is appended at the end of the file.
Use - as the value to read it from stdin.

Examples:
  props set db.host localhost
  props set db.password - < secret.txt
  props --encrypt set api.token abc123`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value := args[1]

			// Handle reading from stdin if "-"
			if value == "-" {
				data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
				if err != nil {
					return fmt.Errorf("reading value from stdin: %w", err)
				}
				value = string(data)
			}
			if strings.ContainsAny(value, "\r\n") {
				// Drop a single trailing newline from piped input.
				value = strings.TrimRight(value, "\r\n")
				if strings.ContainsAny(value, "\r\n") {
					return fmt.Errorf("value for %q must be a single line", key)
				}
			}

			// Surrounding whitespace would not survive a reload.
			value = strings.TrimSpace(value)

			if err := app.File.Update(func(s *props.Store) error {
				return s.SetProperty(key, value)
			}); err != nil {
				return fmt.Errorf("setting property: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"key":   key,
					"value": value,
				})
			}

			fmt.Fprintf(app.Out, "%s Set %s = %s\n", app.SuccessColor("✓"), key, value)
			return nil
		},
	}

	return cmd
}

// newUnsetCmd creates the unset command.
func newUnsetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a property",
		Long: `Remove a property from the file.

Examples:
  props unset db.password`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			var removed bool
			if err := app.File.Update(func(s *props.Store) error {
				var err error
				removed, err = s.RemoveProperty(key)
				return err
			}); err != nil {
				return fmt.Errorf("unsetting property: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"key":     key,
					"removed": removed,
				})
			}

			if removed {
				fmt.Fprintf(app.Out, "%s Unset %s\n", app.SuccessColor("✓"), key)
			} else {
				fmt.Fprintf(app.Out, "%s %s was not set\n", app.WarnColor("!"), key)
			}
			return nil
		},
	}

	return cmd
}
