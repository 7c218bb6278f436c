package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/tour/internal/cli/config"
	"github.com/leapstack-labs/tour/internal/cli/output"
	"github.com/leapstack-labs/tour/internal/cli/testutil"
	"github.com/leapstack-labs/tour/internal/lessons"
)

func plainConfig() *config.Config {
	return &config.Config{
		Output:  "plain",
		Indent:  config.DefaultIndent,
		Lessons: config.DefaultLessons(),
	}
}

// executeCommand runs cmd with cfg and a test logger in its context and
// returns the captured stdout and stderr.
func executeCommand(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()

	ctx := context.WithValue(context.Background(), config.ConfigKey(), cfg)
	ctx = context.WithValue(ctx, config.LoggerKey(), testutil.NewTestLogger(t))

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	// Mirror the root command, which silences cobra's usage and error output.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestNewRunCommand(t *testing.T) {
	cmd := NewRunCommand()

	assert.Equal(t, "run [lesson...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("all"), "flag %q should exist", "all")
}

func TestRunCommand(t *testing.T) {
	t.Run("by reference", func(t *testing.T) {
		out, _, err := executeCommand(t, NewRunCommand(), plainConfig(), "1", "types")
		require.NoError(t, err)

		hello := strings.Index(out, testutil.BannerLine("Example 1: Hello World"))
		types := strings.Index(out, testutil.BannerLine("Example 5: Types"))
		require.GreaterOrEqual(t, hello, 0)
		assert.Greater(t, types, hello, "lessons run in argument order")
		testutil.AssertNoANSI(t, out)
	})

	t.Run("configured lessons without arguments", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Lessons = []string{"libraries"}

		out, _, err := executeCommand(t, NewRunCommand(), cfg)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "\n\t/"), "output starts with a banner")
		assert.Contains(t, out, testutil.BannerLine("Example 11: Libraries"))
		assert.NotContains(t, out, "Example 12")
	})

	t.Run("all", func(t *testing.T) {
		out, _, err := executeCommand(t, NewRunCommand(), plainConfig(), "--all")
		require.NoError(t, err)
		for _, l := range lessons.All() {
			assert.Contains(t, out, testutil.BannerLine(l.Heading()))
		}
	})

	t.Run("unknown lesson prints nothing", func(t *testing.T) {
		out, _, err := executeCommand(t, NewRunCommand(), plainConfig(), "1", "borrowing")
		require.ErrorIs(t, err, lessons.ErrUnknownLesson)
		assert.Empty(t, out)
	})

	t.Run("all with lesson arguments", func(t *testing.T) {
		for _, args := range [][]string{{"--all", "nope"}, {"-a", "1"}} {
			out, _, err := executeCommand(t, NewRunCommand(), plainConfig(), args...)
			require.ErrorIs(t, err, errAllWithLessons, "args %v", args)
			assert.Empty(t, out)
		}
	})

	t.Run("custom indent", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Indent = "  "

		out, _, err := executeCommand(t, NewRunCommand(), cfg, "1")
		require.NoError(t, err)
		assert.Contains(t, out, "\n  "+output.TitleLines("Example 1: Hello World")[0]+"\n")
	})

	t.Run("markdown", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Output = "markdown"

		out, _, err := executeCommand(t, NewRunCommand(), cfg, "modules")
		require.NoError(t, err)
		assert.Contains(t, out, "# Example 12: Modules\n")
		testutil.AssertValidMarkdown(t, out)
	})
}

func TestCompleteLessons(t *testing.T) {
	got, directive := completeLessons(nil, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	require.Len(t, got, len(lessons.All()))
	assert.Equal(t, "hello-world\tHello World", got[0])
}

func TestListCommand(t *testing.T) {
	t.Run("plain table", func(t *testing.T) {
		out, _, err := executeCommand(t, NewListCommand(), plainConfig())
		require.NoError(t, err)

		assert.Contains(t, out, "Lessons (12 total)")
		for _, l := range lessons.All() {
			assert.Contains(t, out, l.Slug)
			assert.Contains(t, out, l.Title)
		}
		assert.Contains(t, out, "┌", "go-pretty light style")
		testutil.AssertNoANSI(t, out)
	})

	t.Run("sections", func(t *testing.T) {
		out, _, err := executeCommand(t, NewListCommand(), plainConfig(), "--sections")
		require.NoError(t, err)
		assert.Contains(t, out, "Locale-aware printing")
		assert.Contains(t, out, "Testcase: Linked List")
	})

	t.Run("markdown", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Output = "markdown"

		out, _, err := executeCommand(t, NewListCommand(), cfg)
		require.NoError(t, err)
		assert.Contains(t, out, "# Lessons (12 total)\n")
		assert.Contains(t, out, "| # | Slug | Title | Sections |\n")
		assert.Contains(t, out, "| 3 | custom-types | Custom Types | 4 |\n")
		testutil.AssertValidMarkdown(t, out)
	})
}

func TestBannerCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "default level",
			args: []string{"Hello"},
			want: "\n\t/*********\\\n\t|  Hello  |\n\t\\*********/\n\n",
		},
		{
			name: "section",
			args: []string{"--level", "section", "Formatting:"},
			want: "\n\t/---------------\\\n\t|  Formatting:  |\n\t\\---------------/\n\n",
		},
		{
			name: "subtitle joins arguments",
			args: []string{"-l", "subtitle", "C", "Structs"},
			want: "\n\tC Structs\n\t=========\n\n",
		},
		{
			name: "title case",
			args: []string{"--level", "subtitle", "--title-case", "c structs"},
			want: "\n\tC Structs\n\t=========\n\n",
		},
		{
			name:    "unknown level",
			args:    []string{"--level", "chapter", "Hello"},
			wantErr: true,
		},
		{
			name:    "missing text",
			args:    []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, NewBannerCommand(), plainConfig(), tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConfigCommand(t *testing.T) {
	cfg := plainConfig()
	cfg.NoColor = true

	out, _, err := executeCommand(t, NewConfigCommand(), cfg)
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, *cfg, got)
}

func TestInteractiveSession(t *testing.T) {
	cmd := NewInteractiveCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetContext(context.WithValue(context.Background(), config.ConfigKey(), plainConfig()))

	s := newSession(cmd)

	assert.False(t, s.handle(""))
	assert.Empty(t, out.String())

	assert.False(t, s.handle("help"))
	assert.Contains(t, out.String(), "quit / exit")
	out.Reset()

	assert.False(t, s.handle("list"))
	assert.Contains(t, out.String(), "Lessons (12 total)")
	out.Reset()

	assert.False(t, s.handle("7"))
	assert.Contains(t, out.String(), testutil.BannerLine("Example 7: Expressions"))
	out.Reset()

	assert.False(t, s.handle("nope"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "unknown lesson")

	assert.True(t, s.handle("quit"))
	assert.True(t, s.handle("  EXIT "))
}

func TestNewLessonCompleter(t *testing.T) {
	c := newLessonCompleter()
	names := make([]string, 0, len(c.GetChildren()))
	for _, child := range c.GetChildren() {
		names = append(names, strings.TrimSpace(string(child.GetName())))
	}
	assert.Contains(t, names, "help")
	assert.Contains(t, names, "flow-control")
	assert.Len(t, names, 4+len(lessons.All()))
}
