package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

// NewPalette builds the page stylesheet around the page's accent color.
func NewPalette(accent string) *Palette {
	return &Palette{
		title: NewBold(accent).MarginBottom(1),
		ok:    NewBold("#04B575"),
		err:   NewBold("#FF0000"),
		warn:  NewStyle("#FFA500"),
		help:  NewEm("#626262"),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
