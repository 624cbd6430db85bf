package ptt

import "fmt"

// Config is the effective configuration for one run. It is built once by
// NewConfig and passed by value; nothing mutates it afterwards.
type Config struct {
	Port    int         // serial port index, 0-7
	Device  string      // device name the port came from, for display
	Line    ControlLine // lines that key the transmitter
	State   bool        // desired line state, true = keyed
	Verbose bool        // report addresses and raw register values
	Quiet   bool        // suppress the line state report, errors still print
	Debug   bool        // debug diagnostics, implies verbose diagnostics
	Level   int         // debug detail 0-5
	Lines   int         // number of lines the operator expects to drive, -1 if not declared
	LogFile string      // optional diagnostics log file
}

// Option is a functional option for building a Config
type Option func(*Config) error

// MaxLevel is the highest debug detail level.
const MaxLevel = 5

// DefaultConfig returns the compiled-in defaults
func DefaultConfig() Config {
	return Config{
		Port:   DefaultPort,
		Device: DeviceName(DefaultPort),
		Line:   LineBoth,
		State:  false,
		Lines:  -1,
	}
}

// NewConfig applies opts on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Config{}, err
		}
	}
	if c.Lines >= 0 && c.Lines != c.Line.Lines() {
		return Config{}, fmt.Errorf("%w: %d line(s) declared but %s drives %d",
			ErrConfiguration, c.Lines, c.Line, c.Line.Lines())
	}
	return c, nil
}

// WithPort sets the port index. Out of range indices are accepted and later
// fall back to port 0 with a warning.
func WithPort(port int) Option {
	return func(c *Config) error {
		c.Port = port
		c.Device = DeviceName(port)
		return nil
	}
}

// WithDevice resolves a device name such as /dev/ttyS1 to its port index
func WithDevice(device string) Option {
	return func(c *Config) error {
		port, err := PortFromDevice(device)
		if err != nil {
			return err
		}
		c.Port = port
		c.Device = device
		return nil
	}
}

// WithLine sets the control line selector
func WithLine(l ControlLine) Option {
	return func(c *Config) error {
		if !l.valid() {
			return fmt.Errorf("%w: invalid control line %d", ErrConfiguration, int(l))
		}
		c.Line = l
		return nil
	}
}

// WithLineName parses and sets the control line selector
func WithLineName(name string) Option {
	return func(c *Config) error {
		l, err := ParseControlLine(name)
		if err != nil {
			return err
		}
		c.Line = l
		return nil
	}
}

// WithState sets the desired line state
func WithState(on bool) Option {
	return func(c *Config) error {
		c.State = on
		return nil
	}
}

// WithVerbose enables verbose reporting
func WithVerbose(v bool) Option {
	return func(c *Config) error {
		c.Verbose = v
		return nil
	}
}

// WithQuiet suppresses the line state report
func WithQuiet(q bool) Option {
	return func(c *Config) error {
		c.Quiet = q
		return nil
	}
}

// WithDebug enables debug diagnostics
func WithDebug(d bool) Option {
	return func(c *Config) error {
		c.Debug = d
		return nil
	}
}

// WithLevel sets the debug detail level (0-5)
func WithLevel(level int) Option {
	return func(c *Config) error {
		if level < 0 || level > MaxLevel {
			return fmt.Errorf("%w: debug level %d out of range 0-%d", ErrConfiguration, level, MaxLevel)
		}
		c.Level = level
		return nil
	}
}

// WithLines declares how many lines the operator expects the selector to
// drive. NewConfig rejects a mismatch.
func WithLines(n int) Option {
	return func(c *Config) error {
		if n < 0 || n > 2 {
			return fmt.Errorf("%w: line count %d out of range 0-2", ErrConfiguration, n)
		}
		c.Lines = n
		return nil
	}
}

// WithLogFile sends diagnostics to a rotating log file as well as stderr
func WithLogFile(path string) Option {
	return func(c *Config) error {
		c.LogFile = path
		return nil
	}
}
