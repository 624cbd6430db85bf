package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/allbin/ptt"
)

func parseBool(raw string) Setting[bool] {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "on", "yes", "true", "high":
		return Value(true)
	case "0", "off", "no", "false", "low":
		return Value(false)
	default:
		return Invalid[bool](fmt.Errorf("%w: invalid boolean %q", ptt.ErrConfiguration, raw))
	}
}

func parseInt(raw string) Setting[int] {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Invalid[int](fmt.Errorf("%w: invalid number %q", ptt.ErrConfiguration, raw))
	}
	return Value(n)
}

func parseDevice(raw string) Setting[string] {
	device := strings.TrimSpace(raw)
	if _, err := ptt.PortFromDevice(device); err != nil {
		return Invalid[string](err)
	}
	return Value(device)
}

func parseLineName(raw string) Setting[ptt.ControlLine] {
	l, err := ptt.ParseControlLine(strings.TrimSpace(raw))
	if err != nil {
		return Invalid[ptt.ControlLine](err)
	}
	return Value(l)
}

func parseLineNumber(raw string) Setting[ptt.ControlLine] {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Invalid[ptt.ControlLine](fmt.Errorf("%w: invalid control line number %q", ptt.ErrConfiguration, raw))
	}
	l, err := ptt.ControlLineFromNumber(n)
	if err != nil {
		return Invalid[ptt.ControlLine](err)
	}
	return Value(l)
}

// ParseState reads the positional line state: an integer reduced to its low
// bit, so any odd number keys the transmitter.
func ParseState(raw string) (bool, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: state %q is not a number", ptt.ErrUsage, raw)
	}
	return n&1 == 1, nil
}

// ParseSignalState reads a line state given as a word or a digit.
func ParseSignalState(raw string) (bool, error) {
	s := parseBool(raw)
	v, err := s.Get()
	if err != nil {
		return false, fmt.Errorf("%w: invalid state %q (valid: high, low, on, off, true, false, 1, 0)", ptt.ErrUsage, raw)
	}
	return v, nil
}
