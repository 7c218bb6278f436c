// Package output renders lesson text for the terminal, for pipes and as
// markdown. It owns the banner formatter every lesson uses to separate its
// examples, sections and subtitles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how the renderer formats output.
//
//nolint:revive // OutputMode reads better at call sites than output.Type
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModePlain    OutputMode = "plain"
	ModeMarkdown OutputMode = "markdown"
)

// DefaultIndent prefixes every banner line.
const DefaultIndent = "\t"

// Mode converts a config string to an OutputMode. Unknown values fall back
// to ModeAuto.
func Mode(s string) OutputMode {
	switch m := OutputMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeText, ModePlain, ModeMarkdown:
		return m
	case "md":
		return ModeMarkdown
	default:
		return ModeAuto
	}
}

// Renderer writes lesson output in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	indent string
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		indent: DefaultIndent,
	}
	r.styles = NewStyles(out, r.EffectiveMode() == ModeText && !termenv.EnvNoColor())
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// SetIndent sets the prefix written before every banner and code line.
func (r *Renderer) SetIndent(indent string) {
	r.indent = indent
}

// DisableColor drops all styling while keeping the text layout.
func (r *Renderer) DisableColor() {
	r.styles = NewStyles(r.out, false)
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModePlain
}

// IsTTY reports whether the output stream is a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Styles returns the style set.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the underlying output stream.
func (r *Renderer) Writer() io.Writer { return r.out }

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Text writes each string as its own line, verbatim.
func (r *Renderer) Text(lines ...string) {
	for _, line := range lines {
		_, _ = io.WriteString(r.out, line+"\n")
	}
}

// Example writes a top-level banner.
func (r *Renderer) Example(title string) {
	r.Banner(Banner{Title: title, Level: LevelExample})
}

// Section writes a second-level banner.
func (r *Renderer) Section(title string) {
	r.Banner(Banner{Title: title, Level: LevelSection})
}

// Subtitle writes a third-level banner.
func (r *Renderer) Subtitle(title string) {
	r.Banner(Banner{Title: title, Level: LevelSubtitle})
}

// Banner writes b framed by a blank line on each side.
func (r *Renderer) Banner(b Banner) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println()
		r.Println(FormatHeader(int(b.Level)+1, b.Title))
		r.Println()
		return
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, line := range r.bannerLines(b) {
		sb.WriteString(r.indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	_, _ = io.WriteString(r.out, sb.String())
}

// bannerLines returns b.Lines with the frame and title styled separately.
func (r *Renderer) bannerLines(b Banner) []string {
	lines := b.Lines()
	frame := r.styles.borderStyle(b.Level)
	title := r.styles.BannerTitle

	if b.Level == LevelSubtitle {
		return []string{title.Render(lines[0]), frame.Render(lines[1])}
	}
	mid := lines[1]
	return []string{
		frame.Render(lines[0]),
		frame.Render("|") + title.Render(mid[1:len(mid)-1]) + frame.Render("|"),
		frame.Render(lines[2]),
	}
}

// Header writes a heading outside the banner hierarchy, used by listings.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		r.Println()
		return
	}
	style := r.styles.Header2
	if level <= 1 {
		style = r.styles.Header1
	}
	r.Println(style.Render(text))
}

// Success writes a confirmation line.
func (r *Renderer) Success(text string) {
	r.Println(r.styles.Success.Render(text))
}

// Code writes a source snippet, indented in text modes and fenced in markdown.
func (r *Renderer) Code(lines ...string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("```go")
		for _, line := range lines {
			r.Println(line)
		}
		r.Println("```")
		return
	}
	for _, line := range lines {
		for _, sub := range strings.Split(line, "\n") {
			r.Println(r.indent + r.styles.Code.Render(sub))
		}
	}
}

// Result writes "expr -> value".
func (r *Renderer) Result(expr string, value any) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Printf("`%s` -> `%v`\n", expr, value)
		return
	}
	r.Printf("%s -> %v\n", expr, value)
}

// Note writes a muted aside.
func (r *Renderer) Note(text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("> " + text)
		return
	}
	r.Println(r.styles.Muted.Render("(" + text + ")"))
}

// Error writes an error message to the error stream.
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("Error: "+err.Error()))
}
