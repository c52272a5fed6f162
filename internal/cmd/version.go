package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the current version of props. It can be overridden at build
// time via -ldflags "-X simpleprops/internal/cmd.Version=1.2.3".
var Version = "0.1.0"

func newVersionCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := provider.Out
			if out == nil {
				out = cmd.OutOrStdout()
			}
			if provider.JSONOutput {
				return json.NewEncoder(out).Encode(map[string]string{
					"version": Version,
				})
			}
			fmt.Fprintf(out, "props version %s\n", Version)
			return nil
		},
	}
	return cmd
}
