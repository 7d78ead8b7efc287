package ports

import (
	"fmt"
	"net"
)

// FindFreePort asks the OS for an ephemeral loopback port and releases it
// before returning. Nothing stops another process from binding the same port
// before the caller does; callers accept that race.
func FindFreePort() (uint16, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("listen: %w", err)
	}
	defer l.Close()
	return uint16(l.Addr().(*net.TCPAddr).Port), nil
}
