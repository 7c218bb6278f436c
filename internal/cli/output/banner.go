package output

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BannerLevel is the nesting level of a banner.
type BannerLevel int

// Banner levels, outermost first.
const (
	LevelExample BannerLevel = iota
	LevelSection
	LevelSubtitle
)

// Per-level padding added to the title width to get the border width.
const (
	examplePadding  = 4
	sectionPadding  = 4
	subtitlePadding = 0
)

// Border characters per level.
const (
	exampleBorder  = "*"
	sectionBorder  = "-"
	subtitleBorder = "="
)

var levelNames = map[BannerLevel]string{
	LevelExample:  "example",
	LevelSection:  "section",
	LevelSubtitle: "subtitle",
}

// String returns the level name.
func (l BannerLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("BannerLevel(%d)", int(l))
}

// ParseBannerLevel parses a level name as accepted by the banner command.
func ParseBannerLevel(s string) (BannerLevel, error) {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown banner level %q (want example, section or subtitle)", s)
}

// Banner is a title framed by level-specific borders.
type Banner struct {
	Title string
	Level BannerLevel
}

// Width returns the border width: title length in bytes plus the level
// padding. The border is never shorter than the title.
func (b Banner) Width() int {
	return len(b.Title) + b.padding()
}

func (b Banner) padding() int {
	switch b.Level {
	case LevelSection:
		return sectionPadding
	case LevelSubtitle:
		return subtitlePadding
	default:
		return examplePadding
	}
}

// Border returns the border character for the banner level.
func (b Banner) Border() string {
	switch b.Level {
	case LevelSection:
		return sectionBorder
	case LevelSubtitle:
		return subtitleBorder
	default:
		return exampleBorder
	}
}

// Lines renders the banner without indentation or surrounding blank lines.
// Example and section banners have three lines, subtitles two.
func (b Banner) Lines() []string {
	width := b.Width()
	rule := strings.Repeat(b.Border(), width)
	title := center(b.Title, width)

	if b.Level == LevelSubtitle {
		return []string{title, rule}
	}
	return []string{
		"/" + rule + "\\",
		"|" + title + "|",
		"\\" + rule + "/",
	}
}

// TitleLines renders a top-level example banner.
func TitleLines(text string) []string {
	return Banner{Title: text, Level: LevelExample}.Lines()
}

// SectionLines renders a section banner.
func SectionLines(text string) []string {
	return Banner{Title: text, Level: LevelSection}.Lines()
}

// SubtitleLines renders a subtitle banner.
func SubtitleLines(text string) []string {
	return Banner{Title: text, Level: LevelSubtitle}.Lines()
}

// center pads s with spaces to width counted in runes; an odd remainder goes
// on the right.
func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
