//go:build !linux

package ioport

import "github.com/allbin/ptt"

// DevPortPath is the kernel's byte-addressed view of the I/O port space.
const DevPortPath = "/dev/port"

// DevPort is only implemented on Linux.
type DevPort struct{}

var _ ptt.Bus = (*DevPort)(nil)

func NewDevPort() *DevPort { return &DevPort{} }

func (*DevPort) Acquire(ptt.Address, int) error         { return ErrUnsupported }
func (*DevPort) ReadRegister(ptt.Address) (byte, error) { return 0, ErrUnsupported }
func (*DevPort) WriteRegister(ptt.Address, byte) error  { return ErrUnsupported }
func (*DevPort) Close() error                           { return nil }
