package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tour/internal/cli/output"
	"github.com/leapstack-labs/tour/internal/lessons"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Sections bool
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all lessons",
		Long: `List every lesson with its number, slug and title.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Plain table

Use --output markdown for a markdown table.`,
		Example: `  # List all lessons
  tour list

  # Include section titles
  tour list --sections`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Sections, "sections", "s", false, "Show the section titles of each lesson")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	r := NewCommandContext(cmd).Renderer
	renderLessonList(r, lessons.All(), opts.Sections)
	return nil
}

// renderLessonList writes the catalogue as a table in the renderer's mode.
func renderLessonList(r *output.Renderer, all []lessons.Lesson, withSections bool) {
	header := []string{"#", "Slug", "Title", "Sections"}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Header(1, fmt.Sprintf("Lessons (%d total)", len(all)))
		rows := make([][]string, 0, len(all))
		for _, l := range all {
			rows = append(rows, []string{strconv.Itoa(l.Number), l.Slug, l.Title, sectionsCell(l, withSections, ", ")})
		}
		r.Text(output.FormatTable(header, rows))
		return
	}

	r.Header(1, fmt.Sprintf("Lessons (%d total)", len(all)))

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{header[0], header[1], header[2], header[3]})
	for _, l := range all {
		t.AppendRow(table.Row{l.Number, l.Slug, l.Title, sectionsCell(l, withSections, "\n")})
	}
	t.Render()
}

// sectionsCell returns the section count, or the titles joined by sep.
func sectionsCell(l lessons.Lesson, withSections bool, sep string) string {
	if !withSections {
		return strconv.Itoa(len(l.Sections))
	}
	return strings.Join(l.Sections, sep)
}
