//go:build linux

package ioport

import (
	"fmt"
	"io"

	"github.com/allbin/ptt"
	"golang.org/x/sys/unix"
)

// DevPortPath is the kernel's byte-addressed view of the I/O port space.
const DevPortPath = "/dev/port"

// DevPort reads and writes I/O ports through /dev/port. Acquire grants
// per-port permission with ioperm where the architecture has it and opens
// the device; both require CAP_SYS_RAWIO.
type DevPort struct {
	gate
	path string
	fd   int
}

// Ensure DevPort implements ptt.Bus at compile time
var _ ptt.Bus = (*DevPort)(nil)

// NewDevPort returns an unacquired DevPort.
func NewDevPort() *DevPort {
	return &DevPort{path: DevPortPath, fd: -1}
}

func (p *DevPort) Acquire(addr ptt.Address, size int) error {
	if err := p.gate.acquire(addr, size); err != nil {
		return err
	}
	if err := ioperm(addr, size, true); err != nil {
		p.gate = gate{}
		return err
	}
	fd, err := unix.Open(p.path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		_ = ioperm(addr, size, false)
		p.gate = gate{}
		return fmt.Errorf("open %s: %w", p.path, err)
	}
	p.fd = fd
	return nil
}

func (p *DevPort) ReadRegister(addr ptt.Address) (byte, error) {
	if err := p.check(addr); err != nil {
		return 0, err
	}
	buf := make([]byte, 1)
	n, err := unix.Pread(p.fd, buf, int64(addr))
	if err != nil {
		return 0, fmt.Errorf("pread %s: %w", addr, err)
	}
	if n != 1 {
		return 0, io.ErrUnexpectedEOF
	}
	return buf[0], nil
}

func (p *DevPort) WriteRegister(addr ptt.Address, v byte) error {
	if err := p.check(addr); err != nil {
		return err
	}
	n, err := unix.Pwrite(p.fd, []byte{v}, int64(addr))
	if err != nil {
		return fmt.Errorf("pwrite %s: %w", addr, err)
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// Close releases the port permission and the device.
func (p *DevPort) Close() error {
	if !p.acquired {
		return nil
	}
	_ = ioperm(p.from, p.size, false)
	err := unix.Close(p.fd)
	p.fd = -1
	p.gate = gate{}
	return err
}
