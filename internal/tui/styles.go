package tui

import (
	"github.com/charmbracelet/lipgloss"

	"automates-desktop/internal/tui/util"
)

type styles struct {
	title   lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	url     lipgloss.Style
	help    lipgloss.Style
	spinner lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{title: s.Bold(true), ok: s, bad: s, warn: s, url: s, help: s, spinner: s}
	}
	p := util.LauncherPalette()
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(p.Brand).Padding(0, 1),
		ok:      lipgloss.NewStyle().Foreground(p.Up).Bold(true),
		bad:     lipgloss.NewStyle().Foreground(p.Down).Bold(true),
		warn:    lipgloss.NewStyle().Foreground(p.Pending),
		url:     lipgloss.NewStyle().Underline(true),
		help:    lipgloss.NewStyle().Foreground(p.Hint),
		spinner: lipgloss.NewStyle().Foreground(p.Brand),
	}
}
