package cli

import (
	"fmt"

	"github.com/githubnext/boomi-validate/pkg/config"
	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/spf13/cobra"
)

var validateLog = logger.New("cli:validate_command")

// ExitError carries a non-zero process exit code out of a command. It has
// already been reported to the user when returned.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file.xml> [file.xml]...",
		Short: "Validate Boomi process XML files against organizational policy",
		Long: `Validate one or more Boomi process definition XML files.

Each file is checked against two rules:
  1. It contains a returndocuments shape whose label mentions "Error".
  2. It does not reference any blocklisted componentId.

A markdown report is printed to stdout, written to ` + constants.DefaultReportFile + `,
and appended to the file named by $` + constants.StepSummaryEnvVar + ` when it is set.

Exit codes:
  0  all files passed
  1  at least one file failed
  2  no files were given

Examples:
  ` + constants.CLIName + ` validate process.xml
  ` + constants.CLIName + ` validate processes/*.xml
  ` + constants.CLIName + ` validate --recover sloppy-export.xml
  ` + constants.CLIName + ` validate --config ci/boomi.yml --json processes/*.xml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			verbose := verboseFlag(cmd)

			validateLog.Printf("Running validate command: files=%v, config=%s", args, configPath)

			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}

			code, err := RunValidate(cfg, RunOptions{
				Files:      args,
				JSONOutput: jsonOutput,
				Verbose:    verbose,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if code != constants.ExitPassed {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Config file (default: "+constants.DefaultConfigFile+" when present)")
	cmd.Flags().Bool("recover", false, "Tolerate minor XML malformations instead of failing the file")
	cmd.Flags().StringP("output", "o", "", "Markdown report path (default: "+constants.DefaultReportFile+")")
	cmd.Flags().Int("max-hits", 0, fmt.Sprintf("Maximum blocklisted components listed per file (default: %d)", constants.DefaultMaxReportedHits))
	cmd.Flags().BoolP("json", "j", false, "Print results as JSON on stdout instead of markdown")

	return cmd
}

// loadConfig resolves settings from the config file, the environment, and
// the flags that were set explicitly, in that order.
func loadConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("recover") {
		cfg.Recover, _ = flags.GetBool("recover")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("max-hits") {
		cfg.MaxReportedHits, _ = flags.GetInt("max-hits")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	validateLog.Printf("Effective config: source=%q, recover=%v, output=%s, blocklist=%d", cfg.Source, cfg.Recover, cfg.Output, len(cfg.Blocklist))
	return cfg, nil
}

// verboseFlag reads the root's persistent --verbose flag. Flags inherited
// from parents are only merged into cmd.Flags() when cobra dispatches to cmd,
// so the parents are consulted directly.
func verboseFlag(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if v, err := c.PersistentFlags().GetBool("verbose"); err == nil {
			return v
		}
	}
	return false
}
