package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// propertyJSON is the JSON form of one property.
type propertyJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// newListCmd creates the list command.
func newListCmd(provider *AppProvider) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Long: `List properties in file order.

With --all, comments and blank lines are printed too, showing the file as
it would be saved (encrypted values are shown decrypted).

Examples:
  props list
  props list --all
  props list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			store := app.File.Store()

			if app.JSON {
				out := make([]propertyJSON, 0, store.Len())
				for _, e := range store.Entries() {
					if e.IsProperty() {
						out = append(out, propertyJSON{Key: e.Key(), Value: e.Value()})
					}
				}
				return json.NewEncoder(app.Out).Encode(out)
			}

			if all {
				for _, e := range store.Entries() {
					fmt.Fprintln(app.Out, e.String())
				}
				return nil
			}

			keys := store.Keys()
			if len(keys) == 0 {
				fmt.Fprintln(app.Out, "No properties set")
				return nil
			}
			for _, k := range keys {
				v, _ := store.Property(k)
				fmt.Fprintf(app.Out, "%s = %s\n", k, v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include comments and blank lines")

	return cmd
}
