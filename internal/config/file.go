package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/allbin/ptt"
	"github.com/allbin/ptt/internal/inifile"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "ptt.conf"

// Configuration file sections and keys.
const (
	SectionDebug   = "DEBUG"
	SectionDevices = "DEVICES"
	SectionLines   = "LINES"
)

// handler returns the inifile callback that fills l. Values that do not
// parse become invalid settings; unknown section/key pairs abort the parse.
func (l *Layer) handler() inifile.Handler {
	return func(section, key, value string) error {
		switch section + "." + key {
		case SectionDebug + ".Debug":
			l.Debug = parseBool(value)
		case SectionDebug + ".Verbose":
			l.Verbose = parseBool(value)
		case SectionDebug + ".Quiet":
			l.Quiet = parseBool(value)
		case SectionDebug + ".Level":
			l.Level = parseInt(value)
		case SectionDebug + ".LogFile":
			l.LogFile = Value(value)
		case SectionDevices + ".DeviceName":
			l.Device = parseDevice(value)
		case SectionDevices + ".LineName":
			l.Line = parseLineName(value)
		case SectionDevices + ".ControlLine":
			l.LineNumber = parseLineNumber(value)
		case SectionDevices + ".PortNumber":
			l.Port = parseInt(value)
		case SectionLines + ".Lines":
			l.Lines = parseInt(value)
		default:
			return inifile.ErrUnknownKey
		}
		return nil
	}
}

// FromFile reads the configuration file at path.
func FromFile(path string) (Layer, error) {
	l := Layer{Name: path}
	if err := inifile.ParseFile(path, l.handler()); err != nil {
		return Layer{}, fmt.Errorf("%w: can't load %q: %w", ptt.ErrConfiguration, path, err)
	}
	return l, nil
}

// FromBytes parses configuration file contents held in memory.
func FromBytes(name string, data []byte) (Layer, error) {
	l := Layer{Name: name}
	if err := inifile.Parse(data, l.handler()); err != nil {
		return Layer{}, fmt.Errorf("%w: can't load %q: %w", ptt.ErrConfiguration, name, err)
	}
	return l, nil
}

// isNotExist reports whether err came from a missing file.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
