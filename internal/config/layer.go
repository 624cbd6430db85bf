// Package config builds the effective ptt.Config from layered sources:
// compiled-in defaults, the configuration file, PTT_* environment variables
// and the command line, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/allbin/ptt"
)

// Setting is one field of a Layer. It is either not provided, provided with
// a value, or provided with a value that failed to parse.
type Setting[T any] struct {
	value    T
	provided bool
	err      error
}

// Value returns a provided setting.
func Value[T any](v T) Setting[T] {
	return Setting[T]{value: v, provided: true}
}

// Invalid returns a provided setting whose value could not be used. It wins
// precedence like any other provided value and then fails resolution.
func Invalid[T any](err error) Setting[T] {
	return Setting[T]{provided: true, err: err}
}

// Provided reports whether the layer supplied this field at all.
func (s Setting[T]) Provided() bool {
	return s.provided
}

// Get returns the value, or the parse error of an invalid setting.
func (s Setting[T]) Get() (T, error) {
	return s.value, s.err
}

// Layer is one configuration source.
type Layer struct {
	Name string

	Verbose Setting[bool]
	Quiet   Setting[bool]
	Debug   Setting[bool]
	Level   Setting[int]

	// An explicit Port beats a Device in the same layer.
	Device Setting[string]
	Port   Setting[int]

	// An explicit LineNumber beats a Line given by name in the same layer.
	Line       Setting[ptt.ControlLine]
	LineNumber Setting[ptt.ControlLine]
	Lines      Setting[int]

	State   Setting[bool]
	LogFile Setting[string]
}

// Defaults is the compiled-in layer. It provides every field Resolve needs,
// so resolution never ends with a field unset.
func Defaults() Layer {
	d := ptt.DefaultConfig()
	return Layer{
		Name:    "defaults",
		Verbose: Value(d.Verbose),
		Quiet:   Value(d.Quiet),
		Debug:   Value(d.Debug),
		Level:   Value(d.Level),
		Device:  Value(d.Device),
		Line:    Value(d.Line),
		State:   Value(d.State),
		LogFile: Value(d.LogFile),
	}
}

// pick returns the highest-precedence provided setting of one field, along
// with the name of the layer it came from. layers run lowest to highest.
func pick[T any](layers []Layer, field func(*Layer) Setting[T]) (Setting[T], string) {
	for i := len(layers) - 1; i >= 0; i-- {
		if s := field(&layers[i]); s.Provided() {
			return s, layers[i].Name
		}
	}
	return Setting[T]{}, ""
}

// option turns the winning setting of a field into a ptt.Option. A field no
// layer provides keeps the ptt default.
func option[T any](layers []Layer, field func(*Layer) Setting[T], with func(T) ptt.Option) (ptt.Option, error) {
	s, from := pick(layers, field)
	if !s.Provided() {
		return nil, nil
	}
	v, err := s.Get()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", from, err)
	}
	return sourced(from, with(v)), nil
}

// sourced prefixes errors from opt with the layer name.
func sourced(from string, opt ptt.Option) ptt.Option {
	return func(c *ptt.Config) error {
		if err := opt(c); err != nil {
			return fmt.Errorf("%s: %w", from, err)
		}
		return nil
	}
}

// Resolve merges layers, given lowest precedence first, into the effective
// configuration. Each field takes its value from the highest layer that
// provides it. If that value is invalid resolution fails; it never falls
// back to a lower layer.
func Resolve(layers ...Layer) (ptt.Config, error) {
	// Fixed field order: reporting flags, port, line, state.
	fields := []func() (ptt.Option, error){
		func() (ptt.Option, error) {
			return option(layers, func(l *Layer) Setting[bool] { return l.Debug }, ptt.WithDebug)
		},
		func() (ptt.Option, error) {
			return option(layers, func(l *Layer) Setting[int] { return l.Level }, ptt.WithLevel)
		},
		func() (ptt.Option, error) {
			return option(layers, func(l *Layer) Setting[bool] { return l.Verbose }, ptt.WithVerbose)
		},
		func() (ptt.Option, error) {
			return option(layers, func(l *Layer) Setting[bool] { return l.Quiet }, ptt.WithQuiet)
		},
		func() (ptt.Option, error) {
			return option(layers, func(l *Layer) Setting[string] { return l.LogFile }, ptt.WithLogFile)
		},
		func() (ptt.Option, error) { return portOption(layers) },
		func() (ptt.Option, error) { return lineOption(layers) },
		func() (ptt.Option, error) {
			return option(layers, func(l *Layer) Setting[int] { return l.Lines }, ptt.WithLines)
		},
		func() (ptt.Option, error) {
			return option(layers, func(l *Layer) Setting[bool] { return l.State }, ptt.WithState)
		},
	}

	var opts []ptt.Option
	for _, field := range fields {
		opt, err := field()
		if err != nil {
			return ptt.Config{}, err
		}
		if opt != nil {
			opts = append(opts, opt)
		}
	}
	return ptt.NewConfig(opts...)
}

// portOption finds the highest layer naming a port, by number or by device.
func portOption(layers []Layer) (ptt.Option, error) {
	for i := len(layers) - 1; i >= 0; i-- {
		l := &layers[i]
		switch {
		case l.Port.Provided():
			port, err := l.Port.Get()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", l.Name, err)
			}
			return ptt.WithPort(port), nil
		case l.Device.Provided():
			device, err := l.Device.Get()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", l.Name, err)
			}
			return sourced(l.Name, ptt.WithDevice(device)), nil
		}
	}
	return nil, nil
}

// lineOption finds the highest layer naming a control line, by number or by name.
func lineOption(layers []Layer) (ptt.Option, error) {
	for i := len(layers) - 1; i >= 0; i-- {
		l := &layers[i]
		s := l.LineNumber
		if !s.Provided() {
			s = l.Line
		}
		if !s.Provided() {
			continue
		}
		line, err := s.Get()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name, err)
		}
		return ptt.WithLine(line), nil
	}
	return nil, nil
}
