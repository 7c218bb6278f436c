package commands

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tour/internal/lessons"
)

func updateBrowse(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(browseModel)
	require.True(t, ok, "Update returns a browseModel")
	return bm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestBrowseModel_EnterChoosesHighlighted(t *testing.T) {
	m := newBrowseModel(lessons.All(), 80, 24)

	m, _ = updateBrowse(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateBrowse(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	chosen, ok := m.Chosen()
	require.True(t, ok)
	assert.Equal(t, 2, chosen.Number)
}

func TestBrowseModel_QuitWithoutChoice(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m, cmd := updateBrowse(t, newBrowseModel(lessons.All(), 80, 24), key)
			assert.True(t, isQuit(cmd))
			_, ok := m.Chosen()
			assert.False(t, ok)
		})
	}
}

func TestBrowseModel_View(t *testing.T) {
	m := newBrowseModel(lessons.All(), 80, 24)
	m, _ = updateBrowse(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Lessons (12 total)")
	assert.Contains(t, view, "Example 1: Hello World")
}

func TestLessonItem(t *testing.T) {
	l, err := lessons.Lookup("custom-types")
	require.NoError(t, err)

	item := lessonItem{lesson: l}
	assert.Equal(t, "Example 3: Custom Types", item.Title())
	assert.Equal(t, "custom-types, 4 sections", item.Description())
	assert.Contains(t, item.FilterValue(), "custom-types")
}

func TestBrowseCommand_NeedsTerminal(t *testing.T) {
	_, _, err := executeCommand(t, NewBrowseCommand(), plainConfig())
	require.ErrorIs(t, err, errNotTerminal)
}
