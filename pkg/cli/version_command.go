package cli

import (
	"fmt"
	"runtime"

	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s/%s)\n", constants.CLIName, version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
