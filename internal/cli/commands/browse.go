package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tour/internal/lessons"
)

// errNotTerminal is returned when browse runs without a terminal attached.
var errNotTerminal = errors.New("browse needs a terminal; use tour list and tour run instead")

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick a lesson from a scrollable list",
		Long: `Open a full-screen list of lessons. Type / to filter, enter to run the
highlighted lesson, q or esc to leave without running anything.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}
}

func runBrowse(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	if !cmdCtx.Renderer.IsTTY() {
		return errNotTerminal
	}

	p := tea.NewProgram(
		newBrowseModel(lessons.All(), 80, 24),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run lesson browser: %w", err)
	}

	chosen, ok := final.(browseModel).Chosen()
	if !ok {
		return nil
	}
	lessons.Run(cmd.Context(), cmdCtx.Logger, cmdCtx.Renderer, []lessons.Lesson{chosen})
	return nil
}

// lessonItem implements list.DefaultItem for one lesson.
type lessonItem struct {
	lesson lessons.Lesson
}

func (i lessonItem) FilterValue() string { return i.lesson.Slug + " " + i.lesson.Title }
func (i lessonItem) Title() string       { return i.lesson.Heading() }
func (i lessonItem) Description() string {
	return fmt.Sprintf("%s, %d sections", i.lesson.Slug, len(i.lesson.Sections))
}

// browseModel is the bubbletea model for the lesson browser.
type browseModel struct {
	list   list.Model
	chosen *lessons.Lesson
}

func newBrowseModel(all []lessons.Lesson, width, height int) browseModel {
	items := make([]list.Item, 0, len(all))
	for _, l := range all {
		items = append(items, lessonItem{lesson: l})
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = fmt.Sprintf("Lessons (%d total)", len(all))
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return browseModel{list: l}
}

// Chosen returns the lesson picked with enter, if any.
func (m browseModel) Chosen() (lessons.Lesson, bool) {
	if m.chosen == nil {
		return lessons.Lesson{}, false
	}
	return *m.chosen, true
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Keys go to the filter input while it is being edited.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc":
			// With a filter applied, esc clears it instead.
			if m.list.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(lessonItem); ok {
				chosen := item.lesson
				m.chosen = &chosen
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return m.list.View()
}
