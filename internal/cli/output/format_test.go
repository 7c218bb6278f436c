package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHeader(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "# Title"},
		{1, "# Title"},
		{3, "### Title"},
		{6, "###### Title"},
		{9, "###### Title"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHeader(tt.level, "Title"), "level %d", tt.level)
	}
}

func TestFormatKeyValue(t *testing.T) {
	assert.Equal(t, "- **Sections:** 5", FormatKeyValue("Sections", 5))
}

func TestFormatTable(t *testing.T) {
	got := FormatTable([]string{"#", "Slug"}, [][]string{{"1", "hello-world"}, {"2", "primitives"}})
	want := "| # | Slug |\n| --- | --- |\n| 1 | hello-world |\n| 2 | primitives |\n"
	assert.Equal(t, want, got)
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "/---\\", StripANSI("\x1b[38;5;12m/---\\\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}
