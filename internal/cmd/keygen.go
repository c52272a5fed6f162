package cmd

import (
	"encoding/base64"
	"fmt"

	"simpleprops/props/encrypt"

	"github.com/spf13/cobra"
)

// newKeygenCmd creates the keygen command.
func newKeygenCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a new random encryption key",
		Long: `Print a new random 256-bit key, base64 encoded.

Store it in the variable named by key_env (PROPS_KEY by default), for
example in a .env file next to .props.yaml.

Examples:
  echo "PROPS_KEY=$(props keygen)" >> .env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := encrypt.GenerateKey()
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			out := provider.Out
			if out == nil {
				out = cmd.OutOrStdout()
			}
			fmt.Fprintln(out, base64.StdEncoding.EncodeToString(key))
			return nil
		},
	}

	return cmd
}
