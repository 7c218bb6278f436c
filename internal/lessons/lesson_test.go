package lessons

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tour/internal/cli/output"
	"github.com/leapstack-labs/tour/internal/cli/testutil"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 12)

	slugs := make(map[string]bool, len(all))
	for i, l := range all {
		assert.Equal(t, i+1, l.Number, "lessons are numbered consecutively")
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Sections, "lesson %d lists no sections", l.Number)
		assert.False(t, slugs[l.Slug], "duplicate slug %q", l.Slug)
		slugs[l.Slug] = true
	}

	// All returns a copy.
	all[0].Title = "changed"
	assert.Equal(t, "Hello World", All()[0].Title)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		ref        string
		wantNumber int
		wantErr    bool
	}{
		{name: "by number", ref: "3", wantNumber: 3},
		{name: "by slug", ref: "flow-control", wantNumber: 8},
		{name: "slug is case insensitive", ref: "Custom-Types", wantNumber: 3},
		{name: "surrounding space", ref: " 12 ", wantNumber: 12},
		{name: "unknown number", ref: "13", wantErr: true},
		{name: "zero", ref: "0", wantErr: true},
		{name: "unknown slug", ref: "borrowing", wantErr: true},
		{name: "empty", ref: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Lookup(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLesson)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, l.Number)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		ls, err := Resolve([]string{"12", "hello-world", "5"})
		require.NoError(t, err)
		require.Len(t, ls, 3)
		assert.Equal(t, []int{12, 1, 5}, []int{ls[0].Number, ls[1].Number, ls[2].Number})
	})

	t.Run("fails on unknown", func(t *testing.T) {
		ls, err := Resolve([]string{"1", "nope", "2"})
		require.ErrorIs(t, err, ErrUnknownLesson)
		assert.Contains(t, err.Error(), "nope")
		assert.Nil(t, ls)
	})

	t.Run("empty", func(t *testing.T) {
		ls, err := Resolve(nil)
		require.NoError(t, err)
		assert.Empty(t, ls)
	})
}

func TestLessons_Render(t *testing.T) {
	for _, l := range All() {
		t.Run(l.Slug, func(t *testing.T) {
			tr := testutil.NewTestRendererPlain()
			require.NotPanics(t, func() { l.Render(tr.Renderer) })

			out := tr.Output()
			example := "\n" + output.DefaultIndent + strings.Join(output.TitleLines(l.Heading()), "\n"+output.DefaultIndent) + "\n\n"
			assert.True(t, strings.HasPrefix(out, example), "output starts with the example banner")

			// Section banners appear in the listed order.
			pos := 0
			for _, s := range l.Sections {
				banner := output.DefaultIndent + strings.Join(output.SectionLines(s), "\n"+output.DefaultIndent)
				idx := strings.Index(out[pos:], banner)
				require.GreaterOrEqual(t, idx, 0, "section %q missing or out of order", s)
				pos += idx + len(banner)
			}

			testutil.AssertNoANSI(t, out)
			assert.Empty(t, tr.ErrorOutput())
		})
	}
}

func TestLessons_Deterministic(t *testing.T) {
	for _, l := range All() {
		first := testutil.NewTestRendererPlain()
		second := testutil.NewTestRendererPlain()
		l.Render(first.Renderer)
		l.Render(second.Renderer)
		assert.Equal(t, first.Output(), second.Output(), "lesson %d", l.Number)
	}
}

func TestLessons_Markdown(t *testing.T) {
	for _, l := range All() {
		t.Run(l.Slug, func(t *testing.T) {
			tr := testutil.NewTestRendererMarkdown()
			l.Render(tr.Renderer)

			out := tr.Output()
			assert.Contains(t, out, "# "+l.Heading()+"\n")
			for _, s := range l.Sections {
				assert.Contains(t, out, "## "+s+"\n")
			}
			testutil.AssertValidMarkdown(t, out)
		})
	}
}

func TestLessons_Content(t *testing.T) {
	tests := []struct {
		ref  string
		want []string
	}{
		{ref: "hello-world", want: []string{"Hello World!", "1,234,567"}},
		{ref: "custom-types", want: []string{"linked list has length: 3", "3, 2, 1, Nil", "webRed -> #ff0000"}},
		{ref: "functions", want: []string{"functional style -> 5456", "imperative style -> 5456", "recovered: This call never returns."}},
		{ref: "packages", want: []string{"The open box contains: public information"}},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			l, err := Lookup(tt.ref)
			require.NoError(t, err)

			tr := testutil.NewTestRendererPlain()
			l.Render(tr.Renderer)
			for _, w := range tt.want {
				assert.Contains(t, tr.Output(), w)
			}
		})
	}
}

func TestRun(t *testing.T) {
	ls, err := Resolve([]string{"1", "12"})
	require.NoError(t, err)

	tr := testutil.NewTestRendererPlain()
	Run(context.Background(), testutil.NewTestLogger(t), tr.Renderer, ls)

	out := tr.Output()
	first := strings.Index(out, testutil.BannerLine("Example 1: Hello World"))
	second := strings.Index(out, testutil.BannerLine("Example 12: Modules"))
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestRender_WithoutBody(t *testing.T) {
	tr := testutil.NewTestRendererPlain()
	Lesson{Number: 99, Title: "Empty"}.Render(tr.Renderer)
	rule := strings.Repeat("*", len("Example 99: Empty")+4)
	assert.Equal(t, "\n\t/"+rule+"\\\n\t|  Example 99: Empty  |\n\t\\"+rule+"/\n\n", tr.Output())
}
