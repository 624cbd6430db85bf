package ptt

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is an x86 I/O port address.
type Address uint16

func (a Address) String() string {
	return fmt.Sprintf("0x%03X", uint16(a))
}

const (
	// MCROffset is the distance of the Modem Control Register from the UART base.
	MCROffset = 0x04

	// IOMask keeps computed addresses inside the 16-bit I/O space.
	IOMask = 0xFFFF

	// AcquireSize is the width of the region requested from the kernel. Only
	// the MCR itself is ever opened up, never the whole UART block.
	AcquireSize = 1

	// DefaultPort is used when a port index has no table entry.
	DefaultPort = 0

	// MaxPort is the highest port index with a table entry.
	MaxPort = 7
)

// baseAddresses holds the legacy ISA COM1-COM4 bases followed by addresses
// typical of PCI multi-port cards.
var baseAddresses = [MaxPort + 1]Address{
	0: 0x3F8,
	1: 0x2F8,
	2: 0x3E8,
	3: 0x2E8,
	4: 0xEC98,
	5: 0xDCC0,
	6: 0xDCC8,
	7: 0xDCD0,
}

// BaseAddress returns the UART base address for a port index. Indices without
// a table entry resolve to the port 0 address and ok is false; callers are
// expected to warn about the fallback.
func BaseAddress(port int) (addr Address, ok bool) {
	if port < 0 || port > MaxPort {
		return baseAddresses[DefaultPort], false
	}
	return baseAddresses[port], true
}

// MCRAddress returns the Modem Control Register address for a port index,
// with the same fallback rule as BaseAddress.
func MCRAddress(port int) (Address, bool) {
	base, ok := BaseAddress(port)
	return (base + MCROffset) & IOMask, ok
}

const devicePrefix = "/dev/ttyS"

// PortFromDevice translates a device name such as /dev/ttyS1 to its port index.
// Names outside /dev/ttyS0 - /dev/ttyS7 are an error, never a silent default.
func PortFromDevice(device string) (int, error) {
	suffix, found := strings.CutPrefix(device, devicePrefix)
	if found {
		if n, err := strconv.Atoi(suffix); err == nil && n >= 0 && n <= MaxPort && strconv.Itoa(n) == suffix {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown device %q (valid: %s0-%s%d)",
		ErrConfiguration, device, devicePrefix, devicePrefix, MaxPort)
}

// DeviceName returns the conventional device node for a port index.
func DeviceName(port int) string {
	return devicePrefix + strconv.Itoa(port)
}
