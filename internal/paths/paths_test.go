package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceDirOverride(t *testing.T) {
	dir := t.TempDir()
	got, err := ResourceDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	got, err = ResourceDir("relative/res")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestResourceDirDefaultIsAbsolute(t *testing.T) {
	got, err := ResourceDir("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestResolvePrefersResourcesSubdir(t *testing.T) {
	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(filepath.Join(bin, "resources"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib", AppName), 0o755))

	assert.Equal(t, filepath.Join(bin, "resources"), resolveFrom(bin, "linux"))
}

func TestResolvePlatformLayouts(t *testing.T) {
	root := t.TempDir()
	macos := filepath.Join(root, "Foo.app", "Contents", "MacOS")
	require.NoError(t, os.MkdirAll(macos, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Foo.app", "Contents", "Resources"), 0o755))
	assert.Equal(t, filepath.Join(macos, "..", "Resources"), resolveFrom(macos, "darwin"))

	bin := filepath.Join(root, "usr", "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "usr", "lib", AppName), 0o755))
	assert.Equal(t, filepath.Join(bin, "..", "lib", AppName), resolveFrom(bin, "linux"))
}

func TestResolveFallsBackToExeDir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, resolveFrom(dir, "windows"))
}
