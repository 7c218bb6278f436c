package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleLines_Hello(t *testing.T) {
	got := TitleLines("Hello")

	assert.Equal(t, []string{
		`/*********\`,
		`|  Hello  |`,
		`\*********/`,
	}, got)
}

func TestSectionLines_Hello(t *testing.T) {
	got := SectionLines("Hello")

	assert.Equal(t, []string{
		`/---------\`,
		`|  Hello  |`,
		`\---------/`,
	}, got)
}

func TestSubtitleLines_Hello(t *testing.T) {
	got := SubtitleLines("Hello")

	assert.Equal(t, []string{"Hello", "====="}, got)
}

func TestBannerLines_Properties(t *testing.T) {
	titles := []string{
		"",
		"a",
		"Hello",
		"Example 1: Hello World",
		"Print with the fmt package, including: Printf, Sprintf and Errorf",
		"`if` and `else`",
	}

	for _, title := range titles {
		t.Run("framed/"+title, func(t *testing.T) {
			for _, render := range []func(string) []string{TitleLines, SectionLines} {
				lines := render(title)
				require.Len(t, lines, 3)

				width := len(title) + 4
				for _, line := range lines {
					assert.Len(t, line, width+2, "line %q", line)
				}

				inner := lines[1][1 : len(lines[1])-1]
				assert.Equal(t, title, strings.TrimSpace(inner))
				left := len(inner) - len(strings.TrimLeft(inner, " "))
				right := len(inner) - len(strings.TrimRight(inner, " "))
				if title != "" {
					assert.Equal(t, 2, left)
					assert.Equal(t, 2, right)
				}
			}
		})

		t.Run("subtitle/"+title, func(t *testing.T) {
			lines := SubtitleLines(title)
			require.Len(t, lines, 2)
			assert.Equal(t, title, lines[0])
			assert.Equal(t, strings.Repeat("=", len(title)), lines[1])
		})
	}
}

func TestBannerLines_Idempotent(t *testing.T) {
	for _, level := range []BannerLevel{LevelExample, LevelSection, LevelSubtitle} {
		b := Banner{Title: "Closures", Level: level}
		assert.Equal(t, b.Lines(), b.Lines(), level.String())
	}
}

func TestBannerLines_Empty(t *testing.T) {
	tests := []struct {
		level BannerLevel
		want  []string
	}{
		{LevelExample, []string{`/****\`, `|    |`, `\****/`}},
		{LevelSection, []string{`/----\`, `|    |`, `\----/`}},
		{LevelSubtitle, []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			b := Banner{Level: tt.level}
			assert.Equal(t, tt.want, b.Lines())
			assert.Equal(t, b.padding(), b.Width())
		})
	}
}

func TestBanner_BorderConsistency(t *testing.T) {
	tests := []struct {
		level  BannerLevel
		border string
	}{
		{LevelExample, "*"},
		{LevelSection, "-"},
		{LevelSubtitle, "="},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			b := Banner{Title: "Scope and Shadowing", Level: tt.level}
			assert.Equal(t, tt.border, b.Border())
			assert.GreaterOrEqual(t, b.Width(), len(b.Title))

			lines := b.Lines()
			last := lines[len(lines)-1]
			rule := strings.Trim(last, `/\`)
			assert.Equal(t, strings.Repeat(tt.border, b.Width()), rule)
			if tt.level != LevelSubtitle {
				assert.Equal(t, strings.Trim(lines[0], `/\`), rule)
			}
		})
	}
}

func TestBanner_MultiByteTitles(t *testing.T) {
	b := Banner{Title: "héllo", Level: LevelExample}
	assert.Equal(t, 10, b.Width())

	lines := b.Lines()
	assert.Equal(t, `/**********\`, lines[0])
	assert.Equal(t, "|  héllo   |", lines[1])

	for _, title := range []string{"héllo", "日本", "a\x1b[1mb"} {
		t.Run(title, func(t *testing.T) {
			sub := SubtitleLines(title)
			assert.Equal(t, strings.Repeat("=", len(title)), sub[1])

			for _, line := range TitleLines(title) {
				rule := strings.Trim(line, `/\|`)
				assert.GreaterOrEqual(t, len(rule), len(title))
			}
		})
	}
}

func TestCenter_OddGapPadsRight(t *testing.T) {
	assert.Equal(t, " ab  ", center("ab", 5))
	assert.Equal(t, "abc", center("abc", 2))
	assert.Equal(t, " é  ", center("é", 4))
}

func TestParseBannerLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    BannerLevel
		wantErr bool
	}{
		{in: "example", want: LevelExample},
		{in: "Section", want: LevelSection},
		{in: "SUBTITLE", want: LevelSubtitle},
		{in: "chapter", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBannerLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown banner level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBannerLevel_String(t *testing.T) {
	assert.Equal(t, "example", LevelExample.String())
	assert.Equal(t, "BannerLevel(7)", BannerLevel(7).String())
}
