package cmd

import (
	"encoding/json"
	"fmt"

	"simpleprops/props"

	"github.com/spf13/cobra"
)

// newCommentCmd creates the comment command with subcommands.
func newCommentCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Manage comments",
		Long:  `Add and remove comment lines.`,
	}

	cmd.AddCommand(newCommentAddCmd(provider))
	cmd.AddCommand(newCommentRemoveCmd(provider))
	cmd.AddCommand(newCommentStripCmd(provider))

	return cmd
}

// newCommentAddCmd creates the comment add subcommand.
func newCommentAddCmd(provider *AppProvider) *cobra.Command {
	var at int
	var before string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a comment",
		Long: `Add a comment line.

By default the comment is appended at the end of the file. Use --at to
insert it at a 0-based line position, or --before to put it directly above
a property.

Examples:
  props comment add "Database settings"
  props comment add "Read by the worker" --before worker.threads
  props comment add "Generated file, do not edit" --at 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			text := args[0]
			pos := -1
			err = app.File.Update(func(s *props.Store) error {
				switch {
				case before != "":
					pos = s.IndexOfProperty(before)
					if pos < 0 {
						return fmt.Errorf("property %q not found", before)
					}
				case cmd.Flags().Changed("at"):
					pos = at
				default:
					pos = s.Len()
				}
				return s.InsertComment(pos, text)
			})
			if err != nil {
				return fmt.Errorf("adding comment: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"comment":  text,
					"position": pos,
				})
			}

			fmt.Fprintf(app.Out, "%s Added comment at line %d\n", app.SuccessColor("✓"), pos+1)
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "Insert at this 0-based position")
	cmd.Flags().StringVar(&before, "before", "", "Insert directly above this property")
	cmd.MarkFlagsMutuallyExclusive("at", "before")

	return cmd
}

// newCommentRemoveCmd creates the comment remove subcommand.
func newCommentRemoveCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <text>",
		Short: "Remove comments with the given text",
		Long: `Remove every comment whose text matches exactly.

The text is what follows the '#' marker, including any leading space
(a line "# note" has the text " note").

Examples:
  props comment remove " TODO: drop after migration"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			text := args[0]
			var removed bool
			if err := app.File.Update(func(s *props.Store) error {
				removed = s.RemoveComment(text)
				return nil
			}); err != nil {
				return fmt.Errorf("removing comment: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"comment": text,
					"removed": removed,
				})
			}

			if removed {
				fmt.Fprintf(app.Out, "%s Removed comment %q\n", app.SuccessColor("✓"), text)
			} else {
				fmt.Fprintf(app.Out, "%s No comment %q found\n", app.WarnColor("!"), text)
			}
			return nil
		},
	}

	return cmd
}

// newCommentStripCmd creates the comment strip subcommand.
func newCommentStripCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Remove all comments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.File.Update(func(s *props.Store) error {
				s.RemoveAllComments()
				return nil
			}); err != nil {
				return fmt.Errorf("stripping comments: %w", err)
			}

			fmt.Fprintf(app.Out, "%s Removed all comments\n", app.SuccessColor("✓"))
			return nil
		},
	}

	return cmd
}
