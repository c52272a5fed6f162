// props reads and edits key = value properties files.
package main

import (
	"fmt"
	"os"

	"simpleprops/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
