package main

import (
	"errors"
	"os"

	"github.com/githubnext/boomi-validate/pkg/cli"
	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/spf13/cobra"
)

// Build-time variables.
var (
	version = "dev"
)

var mainLog = logger.New("main")

var rootCmd = &cobra.Command{
	Use:     constants.CLIName,
	Short:   "Validate Boomi process XML against organizational policy",
	Version: version,
	Long: `boomi-validate checks exported Boomi process definitions in CI.

Every process must route errors to a returndocuments shape labeled as an
error path, and must not reference blocklisted components.

Common Tasks:
  ` + constants.CLIName + ` validate processes/*.xml   # Validate process files
  ` + constants.CLIName + ` processes/*.xml            # Same, with default validate flags
  ` + constants.CLIName + ` blocklist                  # Show the effective blocklist

Without a subcommand, arguments are validated as files; an empty list
fails with exit code 2. Use --help for this text.

Set DEBUG=* (or DEBUG=rules:*,boomixml:*) for diagnostic logging on stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// An empty file list still goes through validate so that it
		// reports "No XML files provided" and exits 2.
		mainLog.Printf("Delegating %d file argument(s) to validate", len(args))
		return validateCmd.RunE(validateCmd, args)
	},
}

var validateCmd = cli.NewValidateCommand()

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "validation", Title: "Validation Commands:"},
		&cobra.Group{ID: "utilities", Title: "Utilities:"},
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output including a per-file status table")

	validateCmd.GroupID = "validation"

	blocklistCmd := cli.NewBlocklistCommand()
	blocklistCmd.GroupID = "utilities"

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(blocklistCmd)
	rootCmd.AddCommand(cli.NewVersionCommand(version))
}

func run() int {
	err := rootCmd.Execute()
	if err == nil {
		return constants.ExitPassed
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		mainLog.Printf("Exiting with code %d", exitErr.Code)
		return exitErr.Code
	}

	cli.PrintCommandError(err)
	return constants.ExitFailed
}

func main() {
	os.Exit(run())
}
