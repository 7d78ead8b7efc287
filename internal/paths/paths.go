// Package paths resolves where the launcher's bundled resources live.
//
// Resolution order:
//  1. An explicit override (config resource_dir or --resource-dir)
//  2. The first platform bundle location that exists next to the executable
//  3. The executable's own directory
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-platform install directories.
const AppName = "automates-desktop"

// ResourceDir returns the absolute resource directory.
func ResourceDir(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return resolveFrom(filepath.Dir(exe), runtime.GOOS), nil
}

func resolveFrom(exeDir, goos string) string {
	for _, dir := range candidates(exeDir, goos) {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
	}
	return exeDir
}

// candidates lists bundle layouts in preference order.
func candidates(exeDir, goos string) []string {
	dirs := []string{filepath.Join(exeDir, "resources")}
	switch goos {
	case "darwin":
		// Foo.app/Contents/MacOS/<exe> -> Foo.app/Contents/Resources
		dirs = append(dirs, filepath.Join(exeDir, "..", "Resources"))
	case "linux", "freebsd":
		// /usr/bin/<exe> -> /usr/lib/<app>
		dirs = append(dirs, filepath.Join(exeDir, "..", "lib", AppName))
	}
	return dirs
}
