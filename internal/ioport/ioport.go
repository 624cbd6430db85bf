// Package ioport provides ptt.Bus implementations: raw x86 I/O port access
// through /dev/port on Linux, an in-memory register file for tests and dry
// runs, and a decorator that logs every access.
package ioport

import (
	"errors"
	"fmt"

	"github.com/allbin/ptt"
)

var (
	ErrNotAcquired     = errors.New("I/O port access not acquired")
	ErrAlreadyAcquired = errors.New("I/O port access already acquired")
	ErrOutsideRegion   = errors.New("I/O port outside acquired region")
	ErrInvalidRegion   = errors.New("invalid I/O port region")
	ErrUnsupported     = errors.New("raw I/O port access not supported on this platform")
)

// gate enforces the acquire-once, acquire-before-use discipline shared by
// every Bus implementation.
type gate struct {
	from     ptt.Address
	size     int
	acquired bool
}

func (g *gate) acquire(addr ptt.Address, size int) error {
	if g.acquired {
		return ErrAlreadyAcquired
	}
	if size < 1 || int(addr)+size > ptt.IOMask+1 {
		return fmt.Errorf("%w: %s+%d", ErrInvalidRegion, addr, size)
	}
	g.from, g.size, g.acquired = addr, size, true
	return nil
}

func (g *gate) check(addr ptt.Address) error {
	if !g.acquired {
		return ErrNotAcquired
	}
	if addr < g.from || int(addr-g.from) >= g.size {
		return fmt.Errorf("%w: %s not in %s+%d", ErrOutsideRegion, addr, g.from, g.size)
	}
	return nil
}
