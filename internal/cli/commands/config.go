package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/tour/internal/cli/config"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, tour.yaml, TOUR_* environment
variables and flags have been applied, as YAML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd)
		},
	}
}

func runConfig(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	data, err := yaml.Marshal(cmdCtx.Cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if file := config.GetConfigFileUsed(); file != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n", file)
	}
	_, _ = cmd.OutOrStdout().Write(data)
	return nil
}
