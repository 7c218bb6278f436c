// Package commands implements the tour subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tour/internal/cli/config"
	"github.com/leapstack-labs/tour/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the config, logger and renderer for cmd from its
// context. Without a loaded config it falls back to defaults.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: newRenderer(cmd, cfg),
	}
}

// newRenderer creates a renderer for cmd's output streams configured by cfg.
func newRenderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
	r.SetIndent(cfg.Indent)
	if cfg.NoColor {
		r.DisableColor()
	}
	return r
}
