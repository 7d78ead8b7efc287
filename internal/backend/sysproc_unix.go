//go:build !windows

package backend

import "syscall"

func sysProcAttr() *syscall.SysProcAttr { return nil }
