package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette maps backend states to colors.
type Palette struct {
	Brand   lipgloss.Color // title bar, spinner
	Up      lipgloss.Color
	Down    lipgloss.Color // exited or failed
	Pending lipgloss.Color // notices while starting
	Hint    lipgloss.Color
}

// LauncherPalette is the launcher's default palette.
func LauncherPalette() Palette {
	return Palette{
		Brand:   lipgloss.Color("#3D6DFF"),
		Up:      lipgloss.Color("#2AA876"),
		Down:    lipgloss.Color("#D9534F"),
		Pending: lipgloss.Color("#F0AD4E"),
		Hint:    lipgloss.Color("#6C757D"),
	}
}
