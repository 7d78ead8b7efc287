// Package version reports what launcher build is running.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Stamped at release time with
// -ldflags "-X automates-desktop/internal/version.Version=v1.2.0 ...".
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String is the one-line version shown by `automates-desktop version`.
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "automates-desktop %s", Version)
	var meta []string
	if Commit != "" {
		meta = append(meta, "commit "+Commit)
	}
	if Date != "" {
		meta = append(meta, "built "+Date)
	}
	meta = append(meta, runtime.Version(), runtime.GOOS+"/"+runtime.GOARCH)
	fmt.Fprintf(&b, " (%s)", strings.Join(meta, ", "))
	return b.String()
}
