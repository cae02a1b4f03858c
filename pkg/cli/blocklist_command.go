package cli

import (
	"fmt"
	"strconv"

	"github.com/githubnext/boomi-validate/pkg/console"
	"github.com/githubnext/boomi-validate/pkg/rules"
	"github.com/spf13/cobra"
)

// NewBlocklistCommand creates the blocklist command, which prints the
// componentId values the validate command would reject.
func NewBlocklistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocklist",
		Short: "Show the effective componentId blocklist",
		Long: `Show the componentId values rejected by the validate command after
applying the config file and environment overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}

			blocklist := rules.NewBlocklist(cfg.Blocklist...)
			source := "built-in defaults"
			if cfg.Source != "" {
				source = cfg.Source
			}

			table := console.TableConfig{
				Title:   fmt.Sprintf("Blocklist (%d entries, from %s)", blocklist.Len(), source),
				Headers: []string{"#", "componentId"},
			}
			for i, id := range blocklist.IDs() {
				table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), id})
			}

			if blocklist.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), console.FormatInfoMessage(table.Title))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), console.RenderTable(table))
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Config file (default: .boomi-validate.yml when present)")
	return cmd
}
