package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tour/internal/lessons"
)

// errAllWithLessons is returned when --all is combined with lesson arguments.
var errAllWithLessons = errors.New("--all cannot be combined with lesson arguments")

// RunOptions holds options for the run command.
type RunOptions struct {
	All bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run [lesson...]",
		Short: "Run one or more lessons",
		Long: `Run lessons in the order given. A lesson is referenced by its number
or its slug, as printed by "tour list".

Without arguments the lessons listed under "lessons" in the configuration are
run. Every reference is checked before anything is printed.`,
		Example: `  # Run the configured lessons
  tour run

  # Run lessons by number and slug
  tour run 1 flow-control

  # Run the whole tour as markdown
  tour run --all --output markdown > tour.md`,
		ValidArgsFunction: completeLessons,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLessons(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Run every lesson in order")

	return cmd
}

func runLessons(cmd *cobra.Command, args []string, opts *RunOptions) error {
	if opts.All && len(args) > 0 {
		return errAllWithLessons
	}

	cmdCtx := NewCommandContext(cmd)

	refs := args
	if len(refs) == 0 {
		refs = cmdCtx.Cfg.Lessons
	}

	var selected []lessons.Lesson
	if opts.All {
		selected = lessons.All()
	} else {
		var err error
		if selected, err = lessons.Resolve(refs); err != nil {
			return err
		}
	}

	cmdCtx.Logger.DebugContext(cmd.Context(), "running lessons", "count", len(selected), "mode", cmdCtx.Renderer.EffectiveMode())
	lessons.Run(cmd.Context(), cmdCtx.Logger, cmdCtx.Renderer, selected)
	return nil
}

// completeLessons completes lesson slugs for positional arguments.
func completeLessons(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	all := lessons.All()
	slugs := make([]string, 0, len(all))
	for _, l := range all {
		slugs = append(slugs, l.Slug+"\t"+l.Title)
	}
	return slugs, cobra.ShellCompDirectiveNoFileComp
}
