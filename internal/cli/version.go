// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("xibbaz v%s\n", version)
		return nil
	},
	// Version needs no config or server.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}
