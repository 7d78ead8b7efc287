package statusbar

import (
	"fmt"
	"strings"

	"automates-desktop/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState) string {
	parts := []string{"[" + s.Phase.String() + "]", fmt.Sprintf("checks: %d", s.Attempts)}
	if s.Status != "" {
		parts = append(parts, "health: "+s.Status)
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
