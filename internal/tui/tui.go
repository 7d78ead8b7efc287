package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"automates-desktop/internal/tui/state"
	"automates-desktop/internal/tui/util"
	"automates-desktop/internal/tui/widgets/helpoverlay"
	"automates-desktop/internal/tui/widgets/statusbar"
)

// Backend is what the splash screen needs from the command bridge.
type Backend interface {
	APIURL(ctx context.Context) (string, error)
	Ready(ctx context.Context) (bool, error)
	Status(ctx context.Context) (string, error)
}

type Options struct {
	PollInterval time.Duration
	NoColor      bool
	// Exited, when set, is closed if the backend process dies.
	Exited <-chan struct{}
	// Copy writes to the system clipboard. Nil uses clipboard.WriteAll.
	Copy func(string) error
}

// Run shows the launcher screen until the user quits or ctx ends.
// It polls readiness through b while the backend is starting.
func Run(ctx context.Context, b Backend, opts Options) error {
	m := newModel(ctx, b, opts)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if opts.Exited != nil {
		go func() {
			select {
			case <-opts.Exited:
				p.Send(backendExitedMsg{})
			case <-ctx.Done():
			}
		}()
	}
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// ===== Model =====

type (
	urlMsg struct {
		url string
		err error
	}
	probeMsg struct {
		ready bool
		err   error
	}
	statusMsg        struct{ status string }
	tickMsg          struct{}
	backendExitedMsg struct{}
	copiedMsg        struct{ err error }
)

type model struct {
	ctx     context.Context
	backend Backend
	poll    time.Duration
	copy    func(string) error
	st      styles

	spinner spinner.Model
	bar     statusbar.StatusBar
	help    helpoverlay.HelpOverlay
	ui      state.UIState
	started time.Time
	width   int
	// ticking is set while a poll tick is outstanding; at most one chain runs.
	ticking bool
}

func newModel(ctx context.Context, b Backend, opts Options) model {
	poll := opts.PollInterval
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}
	cp := opts.Copy
	if cp == nil {
		cp = clipboard.WriteAll
	}
	st := newStyles(util.NoColor(opts.NoColor))
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.spinner))
	return model{
		ctx:     ctx,
		backend: b,
		poll:    poll,
		copy:    cp,
		st:      st,
		spinner: sp,
		bar:     statusbar.NewStatusBar(),
		help:    helpoverlay.NewHelpOverlay(),
		started: time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchURL(), m.probe())
}

func (m model) fetchURL() tea.Cmd {
	return func() tea.Msg {
		url, err := m.backend.APIURL(m.ctx)
		return urlMsg{url: url, err: err}
	}
}

// probe runs one readiness check off the UI goroutine.
func (m model) probe() tea.Cmd {
	return func() tea.Msg {
		ready, err := m.backend.Ready(m.ctx)
		return probeMsg{ready: ready, err: err}
	}
}

func (m model) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		s, err := m.backend.Status(m.ctx)
		if err != nil {
			return statusMsg{}
		}
		return statusMsg{status: s}
	}
}

// scheduleProbe arms the poll tick unless one is already pending.
func (m *model) scheduleProbe() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.poll, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m model) copyURL() tea.Cmd {
	url := m.ui.URL
	return func() tea.Msg { return copiedMsg{err: m.copy(url)} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.ui = state.ToggleHelp(m.ui)
		case "c":
			if m.ui.URL == "" {
				m.ui.Notice = "API URL not known yet"
				return m, nil
			}
			return m, m.copyURL()
		case "r":
			if !m.ui.Phase.Terminal() {
				m.ui.Notice = ""
				return m, m.probe()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case urlMsg:
		m.ui = state.SetURL(m.ui, msg.url, msg.err)
		return m, nil

	case probeMsg:
		prev := m.ui.Phase
		m.ui = state.ApplyProbe(m.ui, msg.ready, msg.err)
		switch {
		case prev.Terminal() || m.ui.Phase == state.Failed:
			return m, nil
		case m.ui.Phase == state.Ready:
			if prev != state.Ready {
				return m, m.fetchStatus()
			}
			return m, nil
		case prev == state.Ready:
			// Fell back from ready: restart the spinner along with polling.
			poll := m.scheduleProbe()
			return m, tea.Batch(m.spinner.Tick, poll)
		}
		poll := m.scheduleProbe()
		return m, poll

	case tickMsg:
		m.ticking = false
		if m.ui.Phase != state.Waiting {
			return m, nil
		}
		return m, m.probe()

	case statusMsg:
		m.ui = state.SetStatus(m.ui, msg.status)
		return m, nil

	case backendExitedMsg:
		m.ui = state.MarkExited(m.ui)
		return m, nil

	case copiedMsg:
		m.ui = state.Copied(m.ui, msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.ui.Phase != state.Waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render("Automates Desktop"))
	b.WriteString("\n\n")

	switch m.ui.Phase {
	case state.Waiting:
		fmt.Fprintf(&b, "%s Starting backend… (%s)\n",
			m.spinner.View(), time.Since(m.started).Round(time.Second))
	case state.Ready:
		b.WriteString(m.st.ok.Render("✓ Backend ready"))
		b.WriteString("\n")
	case state.Exited:
		b.WriteString(m.st.bad.Render("✗ Backend exited"))
		b.WriteString("\n")
	case state.Failed:
		b.WriteString(m.st.bad.Render(m.wrap("✗ " + m.ui.Err.Error())))
		b.WriteString("\n")
	}

	if m.ui.URL != "" {
		fmt.Fprintf(&b, "API: %s\n", m.st.url.Render(m.ui.URL))
	}
	if m.ui.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.ui))
	}
	b.WriteString("\n")
	b.WriteString(m.st.warn.Render(m.wrap(m.bar.View(m.ui))))
	b.WriteString("\n")
	b.WriteString(m.st.help.Render("c: copy API URL • r: re-check • ?: help • q: quit (stops the backend)"))
	b.WriteString("\n")
	return b.String()
}

// wrap breaks long lines at the terminal width once it is known.
func (m model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return wordwrap.String(s, m.width)
}
