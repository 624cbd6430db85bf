package ptt

import (
	"fmt"
	"strings"
)

// 8250 Modem Control Register bits.
const (
	MaskDTR  byte = 0x01 // Data Terminal Ready
	MaskRTS  byte = 0x02 // Request To Send
	MaskOUT1 byte = 0x04
	MaskOUT2 byte = 0x08
	MaskLoop byte = 0x10

	// MaskControl covers the two lines this package drives.
	MaskControl byte = MaskDTR | MaskRTS

	// maskAbsent bits always read back as zero on a real 8250. Seeing them
	// set usually means there is no UART at the address.
	maskAbsent byte = 0xC0
)

// ControlLine selects which modem control lines key the transmitter.
type ControlLine int

const (
	LineNone ControlLine = iota // leave the register alone
	LineDTR
	LineRTS
	LineBoth // DTR and RTS driven together
)

// lineNames is the single mapping between selectors and their names. Parsing
// and display both go through it.
var lineNames = [...]string{
	LineNone: "NONE",
	LineDTR:  "DTR",
	LineRTS:  "RTS",
	LineBoth: "BOTH",
}

func (l ControlLine) String() string {
	if l.valid() {
		return lineNames[l]
	}
	return "ERROR"
}

func (l ControlLine) valid() bool {
	return l >= LineNone && l <= LineBoth
}

// Mask returns the MCR bits driven by the selector.
func (l ControlLine) Mask() byte {
	switch l {
	case LineDTR:
		return MaskDTR
	case LineRTS:
		return MaskRTS
	case LineBoth:
		return MaskDTR | MaskRTS
	default:
		return 0
	}
}

// Lines returns how many physical lines the selector drives.
func (l ControlLine) Lines() int {
	switch l {
	case LineDTR, LineRTS:
		return 1
	case LineBoth:
		return 2
	default:
		return 0
	}
}

// ParseControlLine translates NONE, DTR, RTS or BOTH to a selector. Matching is
// exact; anything else is an error so that a typo never keys the wrong line.
func ParseControlLine(name string) (ControlLine, error) {
	for l, n := range lineNames {
		if name == n {
			return ControlLine(l), nil
		}
	}
	return LineNone, fmt.Errorf("%w: unknown control line %q (valid: %s)",
		ErrConfiguration, name, strings.Join(lineNames[:], ", "))
}

// ControlLineFromNumber translates the numeric form used by the configuration
// file's ControlLine key (0-3).
func ControlLineFromNumber(n int) (ControlLine, error) {
	l := ControlLine(n)
	if !l.valid() {
		return LineNone, fmt.Errorf("%w: control line number %d out of range 0-3", ErrConfiguration, n)
	}
	return l, nil
}

// NewValue computes the MCR value that drives the lines selected by l to the
// requested state. Only the selected bits change; every other bit of old is
// carried over so the write never disturbs OUT1, OUT2 or LOOP.
func NewValue(old byte, l ControlLine, on bool) byte {
	mask := l.Mask()
	if on {
		return old | mask
	}
	return old &^ mask
}

// IsSet reports whether every bit of mask is set in v.
func IsSet(v, mask byte) bool {
	return (v & mask) == mask
}

// Reportable strips v down to the control bits. Display only; never written.
func Reportable(v byte) byte {
	return v & MaskControl
}

// LineStates reports whether DTR and RTS are set in v.
func LineStates(v byte) (dtr, rts bool) {
	return IsSet(v, MaskDTR), IsSet(v, MaskRTS)
}

// MaskName returns the conventional name of a single MCR bit.
func MaskName(m byte) string {
	switch m {
	case MaskDTR:
		return "DTR"
	case MaskRTS:
		return "RTS"
	case MaskOUT1:
		return "OUT1"
	case MaskOUT2:
		return "OUT2"
	case MaskLoop:
		return "LOOP"
	default:
		return fmt.Sprintf("0x%02X", m)
	}
}
