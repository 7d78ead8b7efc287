//go:build windows

package backend

import (
	"syscall"

	winapi "golang.org/x/sys/windows"
)

// Keep the JVM from opening a console window next to the launcher.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true, CreationFlags: winapi.CREATE_NO_WINDOW}
}
