// Package lessons holds the tutorial catalogue. Each lesson is a
// self-contained routine that prints explanatory text and example output
// through an output.Renderer, bracketed by banners.
package lessons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

// ErrUnknownLesson is returned when a lesson reference matches no lesson.
var ErrUnknownLesson = errors.New("unknown lesson")

// Lesson is one numbered tutorial. Sections lists the titles of its
// section banners in the order they are printed.
type Lesson struct {
	Number   int
	Slug     string
	Title    string
	Sections []string

	run func(r *output.Renderer)
}

// Heading returns the text of the lesson's top-level banner.
func (l Lesson) Heading() string {
	return fmt.Sprintf("Example %d: %s", l.Number, l.Title)
}

// Render prints the lesson's example banner followed by its body.
func (l Lesson) Render(r *output.Renderer) {
	r.Example(l.Heading())
	if l.run != nil {
		l.run(r)
	}
}

// catalogue lists every lesson in number order.
var catalogue = []Lesson{
	helloWorld,
	primitives,
	customTypes,
	variableBindings,
	types,
	conversion,
	expressions,
	flowControl,
	functions,
	packages,
	libraries,
	modules,
}

// All returns every lesson ordered by number.
func All() []Lesson {
	out := make([]Lesson, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup resolves a lesson by number ("3") or slug ("custom-types").
func Lookup(ref string) (Lesson, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		for _, l := range catalogue {
			if l.Number == n {
				return l, nil
			}
		}
		return Lesson{}, fmt.Errorf("%w: %s", ErrUnknownLesson, ref)
	}

	for _, l := range catalogue {
		if strings.EqualFold(l.Slug, ref) {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("%w: %q", ErrUnknownLesson, ref)
}

// Resolve looks up every reference, failing on the first unknown one.
func Resolve(refs []string) ([]Lesson, error) {
	out := make([]Lesson, 0, len(refs))
	for _, ref := range refs {
		l, err := Lookup(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Run executes lessons in order.
func Run(ctx context.Context, logger *slog.Logger, r *output.Renderer, ls []Lesson) {
	for _, l := range ls {
		logger.DebugContext(ctx, "lesson started", "lesson", l.Number, "title", l.Title)
		l.Render(r)
		logger.DebugContext(ctx, "lesson finished", "lesson", l.Number)
	}
}
