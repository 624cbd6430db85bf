//go:build linux && (amd64 || 386)

package ioport

import (
	"fmt"

	"github.com/allbin/ptt"
	"golang.org/x/sys/unix"
)

func ioperm(addr ptt.Address, size int, on bool) error {
	turnOn := 0
	if on {
		turnOn = 1
	}
	if err := unix.Ioperm(int(addr), size, turnOn); err != nil {
		return fmt.Errorf("ioperm %s: %w", addr, err)
	}
	return nil
}
