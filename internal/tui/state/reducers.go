package state

// ToggleHelp flips the help overlay and returns a new state copy.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// SetURL records the API URL, or moves to Failed if the bridge errored.
func SetURL(s UIState, url string, err error) UIState {
	if err != nil {
		s.Phase = Failed
		s.Err = err
		return s
	}
	s.URL = url
	return s
}

// ApplyProbe folds one readiness result into the state.
// Terminal phases ignore late results.
func ApplyProbe(s UIState, ready bool, err error) UIState {
	if s.Phase.Terminal() {
		return s
	}
	s.Attempts++
	switch {
	case err != nil:
		s.Phase = Failed
		s.Err = err
	case ready:
		s.Phase = Ready
	default:
		s.Phase = Waiting
		s.Status = ""
	}
	return s
}

// SetStatus stores the actuator status while ready.
func SetStatus(s UIState, status string) UIState {
	if s.Phase == Ready {
		s.Status = status
	}
	return s
}

// MarkExited records that the backend process is gone.
func MarkExited(s UIState) UIState {
	if s.Phase != Failed {
		s.Phase = Exited
		s.Notice = ""
	}
	return s
}

// Copied sets the notice for a clipboard attempt.
func Copied(s UIState, err error) UIState {
	if err != nil {
		s.Notice = "Copy failed: " + err.Error()
	} else {
		s.Notice = "API URL copied to clipboard"
	}
	return s
}
