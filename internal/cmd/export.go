package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"simpleprops/props"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newExportCmd creates the export command.
func newExportCmd(provider *AppProvider) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print properties as YAML or JSON",
		Long: `Print all properties as a flat YAML or JSON object.

YAML output keeps file order and carries comments over as YAML comments.
JSON output is sorted by key. Encrypted values are exported decrypted.

Examples:
  props export
  props export --format json > app.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			store := app.File.Store()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(app.Out)
				enc.SetIndent(2)
				if err := enc.Encode(toYAML(store)); err != nil {
					return fmt.Errorf("encoding yaml: %w", err)
				}
				return enc.Close()
			case "json":
				all := make(map[string]string, store.Len())
				for _, k := range store.Keys() {
					all[k], _ = store.Property(k)
				}
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}
			return fmt.Errorf("unknown format %q (allowed: yaml, json)", format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, json)")

	return cmd
}

// toYAML builds a mapping node in document order. Comments directly above
// a property become its head comment.
func toYAML(s *props.Store) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	var pending []string
	for _, e := range s.Entries() {
		switch {
		case e.IsComment():
			pending = append(pending, "#"+e.Comment())
		case e.IsBlank():
			pending = nil
		case e.IsProperty():
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key()}
			if len(pending) > 0 {
				key.HeadComment = strings.Join(pending, "\n")
				pending = nil
			}
			doc.Content = append(doc.Content, key,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value()})
		}
	}
	return doc
}

// newImportCmd creates the import command.
func newImportCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Set properties from a YAML file",
		Long: `Set properties from a YAML mapping.

Nested mappings are flattened into dotted keys ("db: {host: x}" becomes
"db.host = x"). Existing properties are updated in place and new ones are
appended in the order they appear in the YAML file. Sequences are rejected.

Examples:
  props import defaults.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			var doc yaml.Node
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			var pairs []propertyJSON
			if len(doc.Content) > 0 {
				if pairs, err = flattenYAML(doc.Content[0], ""); err != nil {
					return fmt.Errorf("importing %s: %w", args[0], err)
				}
			}

			if err := app.File.Update(func(s *props.Store) error {
				for _, p := range pairs {
					if err := s.SetProperty(p.Key, p.Value); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(pairs)
			}
			fmt.Fprintf(app.Out, "%s Imported %d properties\n", app.SuccessColor("✓"), len(pairs))
			return nil
		},
	}

	return cmd
}

// flattenYAML walks a mapping node and returns its scalar leaves under
// dotted keys, in document order.
func flattenYAML(n *yaml.Node, prefix string) ([]propertyJSON, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	var out []propertyJSON
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		key := k.Value
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v.Kind {
		case yaml.ScalarNode:
			if strings.ContainsAny(v.Value, "\r\n") {
				return nil, fmt.Errorf("line %d: %q: multi-line values are not supported", v.Line, key)
			}
			out = append(out, propertyJSON{Key: key, Value: strings.TrimSpace(v.Value)})
		case yaml.MappingNode:
			nested, err := flattenYAML(v, key)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		default:
			return nil, fmt.Errorf("line %d: %q: only scalars and mappings are supported", v.Line, key)
		}
	}
	return out, nil
}
