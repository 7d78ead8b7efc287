package ports

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFreePortInRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, err := FindFreePort()
		require.NoError(t, err)
		assert.NotZero(t, p)
	}
}

func TestFindFreePortIsReleased(t *testing.T) {
	p, err := FindFreePort()
	require.NoError(t, err)

	// The allocator must have dropped its listener, so we can bind it ourselves.
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", p))
	require.NoError(t, err)
	assert.Equal(t, int(p), l.Addr().(*net.TCPAddr).Port)
	require.NoError(t, l.Close())
}
