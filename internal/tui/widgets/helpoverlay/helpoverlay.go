package helpoverlay

import (
	"fmt"
	"strings"

	"automates-desktop/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current phase indicated.
func (HelpOverlay) View(s state.UIState) string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"Backend", []string{"r: re-check readiness", "q/Esc/Ctrl+C: quit and stop the backend"}},
		{"API", []string{"c: copy API URL"}},
		{"View", []string{"?: toggle this help"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Backend: %s)\n", s.Phase)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
