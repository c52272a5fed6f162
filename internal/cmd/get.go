package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"simpleprops/props"

	"github.com/spf13/cobra"
)

// typedGetters converts a property with the mapper named by --as.
var typedGetters = map[string]func(*props.Store, string) (any, bool, error){
	"string": func(s *props.Store, k string) (any, bool, error) {
		v, ok := s.Property(k)
		return v, ok, nil
	},
	"bool":     typed(props.Bool),
	"int":      typed(props.Int),
	"int64":    typed(props.Int64),
	"float":    typed(props.Float32),
	"double":   typed(props.Float64),
	"duration": typed(props.Duration),
	"path":     typed(props.Path),
}

func typed[T any](m props.Mapper[T]) func(*props.Store, string) (any, bool, error) {
	return func(s *props.Store, key string) (any, bool, error) {
		v, ok, err := props.Get(s, key, m)
		return v, ok, err
	}
}

func typeNames() string {
	names := make([]string, 0, len(typedGetters))
	for name := range typedGetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// newGetCmd creates the get command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a property value",
		Long: `Get the value of a property.

Prints the bare value if the key is set, or "key (not set)" if missing.
With --as the value is converted to the given type first and the command
fails if it does not convert.

Examples:
  props get db.host
  props get db.port --as int
  props get feature.enabled --as bool --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			getter, ok := typedGetters[as]
			if !ok {
				return fmt.Errorf("unknown type %q (allowed: %s)", as, typeNames())
			}

			key := args[0]
			value, found, err := getter(app.File.Store(), key)
			if err != nil {
				return err
			}

			if app.JSON {
				result := map[string]any{
					"key":   key,
					"value": value,
					"found": found,
				}
				if !found {
					result["value"] = nil
				}
				return json.NewEncoder(app.Out).Encode(result)
			}

			if found {
				fmt.Fprintln(app.Out, value)
			} else {
				fmt.Fprintf(app.Out, "%s (not set)\n", key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "string", "Convert the value to this type ("+typeNames()+")")

	return cmd
}
