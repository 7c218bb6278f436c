package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

// BannerOptions holds options for the banner command.
type BannerOptions struct {
	Level     string
	TitleCase bool
}

// NewBannerCommand creates the banner command.
func NewBannerCommand() *cobra.Command {
	opts := &BannerOptions{}

	cmd := &cobra.Command{
		Use:   "banner <text>...",
		Short: "Print a single banner",
		Long: `Print one banner around the given text, the same way lessons separate
their examples, sections and subtitles.

Arguments are joined with a single space.`,
		Example: `  tour banner "Hello"
  tour banner --level section Formatting:
  tour banner --level subtitle --title-case "c structs"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBanner(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Level, "level", "l", output.LevelExample.String(), "Banner level (example|section|subtitle)")
	cmd.Flags().BoolVar(&opts.TitleCase, "title-case", false, "Convert the text to title case first")

	_ = cmd.RegisterFlagCompletionFunc("level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			output.LevelExample.String(),
			output.LevelSection.String(),
			output.LevelSubtitle.String(),
		}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runBanner(cmd *cobra.Command, args []string, opts *BannerOptions) error {
	level, err := output.ParseBannerLevel(opts.Level)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if opts.TitleCase {
		text = cases.Title(language.English).String(text)
	}

	NewCommandContext(cmd).Renderer.Banner(output.Banner{Title: text, Level: level})
	return nil
}
