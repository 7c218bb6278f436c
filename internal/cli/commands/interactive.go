package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tour/internal/lessons"
)

const prompt = "tour> "

// InteractiveOptions holds options for the interactive command.
type InteractiveOptions struct {
	HistoryFile string
}

// NewInteractiveCommand creates the interactive command.
func NewInteractiveCommand() *cobra.Command {
	opts := &InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Pick lessons from a prompt",
		Long: `Start a prompt that runs lessons by number or slug.

Type help for commands, quit or exit to leave. Ctrl-D also exits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.HistoryFile, "history", "", "File to keep prompt history in")

	return cmd
}

func runInteractive(cmd *cobra.Command, opts *InteractiveOptions) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    newLessonCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Go tour. Type help for commands, quit to exit")

	s := newSession(cmd)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if quit := s.handle(line); quit {
			break
		}
	}

	return nil
}

// session executes prompt input against one command context.
type session struct {
	cmd    *cobra.Command
	cmdCtx *CommandContext
}

func newSession(cmd *cobra.Command) *session {
	return &session{cmd: cmd, cmdCtx: NewCommandContext(cmd)}
}

// handle runs one line of input and reports whether the session should end.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help":
		printInteractiveHelp(s.cmd.OutOrStdout())
	case "list":
		renderLessonList(s.cmdCtx.Renderer, lessons.All(), false)
	default:
		selected, err := lessons.Resolve(fields)
		if err != nil {
			s.cmdCtx.Renderer.Error(err)
			return false
		}
		lessons.Run(s.cmd.Context(), s.cmdCtx.Logger, s.cmdCtx.Renderer, selected)
	}
	return false
}

func printInteractiveHelp(w io.Writer) {
	help := `
Commands:
  <lesson>...     Run lessons by number or slug, e.g. 3 or custom-types
  list            List all lessons
  help            Show this help message
  quit / exit     Leave the prompt
`
	_, _ = fmt.Fprintln(w, help)
}

// newLessonCompleter completes commands and lesson slugs.
func newLessonCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("list"),
		readline.PcItem("quit"),
		readline.PcItem("exit"),
	}
	for _, l := range lessons.All() {
		items = append(items, readline.PcItem(l.Slug))
	}
	return readline.NewPrefixCompleter(items...)
}
