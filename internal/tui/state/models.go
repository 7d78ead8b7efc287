package state

// Phase is where the launcher screen is in the backend's lifecycle.
type Phase int

const (
	Waiting Phase = iota
	Ready
	Exited
	// Failed means the command bridge itself errored, e.g. state not managed.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "WAITING"
	case Ready:
		return "READY"
	case Exited:
		return "EXITED"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further probing should happen.
func (p Phase) Terminal() bool { return p == Exited || p == Failed }

// UIState holds cross-widget UI state used by the status bar, help overlay and main view.
type UIState struct {
	Phase    Phase
	Attempts int

	URL    string
	Status string // actuator status, set once ready
	Err    error

	ShowHelp bool

	// Notices and ephemeral messages
	Notice string
}
