// Package inifile feeds the contents of an INI file to a callback, one
// section/key/value triple at a time.
package inifile

import (
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

// ErrUnknownKey is returned by handlers for a section/key pair they do not
// recognise.
var ErrUnknownKey = errors.New("unknown section/key")

// Handler receives one key. Returning an error stops the parse.
type Handler func(section, key, value string) error

// ParseFile parses the file at path.
func ParseFile(path string, h Handler) error {
	f, err := ini.Load(path)
	if err != nil {
		return err
	}
	return walk(f, h)
}

// Parse parses INI data held in memory.
func Parse(data []byte, h Handler) error {
	f, err := ini.Load(data)
	if err != nil {
		return err
	}
	return walk(f, h)
}

// walk visits keys in file order. Keys above the first section header are
// reported under ini.DefaultSection.
func walk(f *ini.File, h Handler) error {
	for _, sec := range f.Sections() {
		for _, key := range sec.Keys() {
			if err := h(sec.Name(), key.Name(), key.String()); err != nil {
				return fmt.Errorf("[%s] %s: %w", sec.Name(), key.Name(), err)
			}
		}
	}
	return nil
}
