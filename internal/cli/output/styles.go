package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for text-mode output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Code    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	ExampleBorder  lipgloss.Style
	SectionBorder  lipgloss.Style
	SubtitleBorder lipgloss.Style
	BannerTitle    lipgloss.Style
}

// NewStyles builds styles bound to w. When color is false every style
// renders its input unchanged.
func NewStyles(w io.Writer, color bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lr.NewStyle().Bold(true),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")).TabWidth(lipgloss.NoTabConversion),
		Code:    lr.NewStyle().Foreground(lipgloss.Color("14")).TabWidth(lipgloss.NoTabConversion),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")),

		ExampleBorder:  lr.NewStyle().Foreground(lipgloss.Color("13")),
		SectionBorder:  lr.NewStyle().Foreground(lipgloss.Color("12")),
		SubtitleBorder: lr.NewStyle().Foreground(lipgloss.Color("8")),
		BannerTitle:    lr.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
	}
}

// borderStyle returns the frame style for a banner level.
func (s *Styles) borderStyle(level BannerLevel) lipgloss.Style {
	switch level {
	case LevelSection:
		return s.SectionBorder
	case LevelSubtitle:
		return s.SubtitleBorder
	default:
		return s.ExampleBorder
	}
}
