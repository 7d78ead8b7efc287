package proc

// ChildPID returns the pid of the supervised child, or 0 when the slot is empty.
func (s *Supervisor) ChildPID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.child != nil && s.child.Cmd != nil && s.child.Cmd.Process != nil {
		return s.child.Cmd.Process.Pid
	}
	return 0
}
