package config

import (
	"fmt"
	"strconv"

	"github.com/allbin/ptt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Command line flag names.
const (
	FlagVerbose = "verbose"
	FlagBrief   = "brief"
	FlagDebug   = "debug"
	FlagNoDebug = "nodebug"
	FlagQuiet   = "quiet"
	FlagUnquiet = "unquiet"
	FlagPort    = "port"
	FlagDevice  = "device"
	FlagLine    = "line"
	FlagFile    = "file"
	FlagLogFile = "log-file"
)

// toggle is one half of a pair of flags sharing a bool, such as --verbose
// and --brief. Flags are applied in command line order, so the last one wins.
type toggle struct {
	val *bool
	on  bool // value stored when the flag is given
}

func (t *toggle) String() string {
	if t.val == nil {
		return "false"
	}
	return strconv.FormatBool(*t.val == t.on)
}

func (t *toggle) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*t.val = b == t.on
	return nil
}

func (t *toggle) Type() string {
	return "bool"
}

func addToggle(fs *pflag.FlagSet, on, off, onUsage, offUsage string) {
	val := new(bool)
	fs.VarPF(&toggle{val: val, on: true}, on, "", onUsage).NoOptDefVal = "true"
	fs.VarPF(&toggle{val: val, on: false}, off, "", offUsage).NoOptDefVal = "true"
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	addToggle(fs, FlagVerbose, FlagBrief, "Verbose reporting", "Brief reporting")
	addToggle(fs, FlagDebug, FlagNoDebug, "Debug diagnostics", "No debug diagnostics")
	addToggle(fs, FlagQuiet, FlagUnquiet, "Suppress the line state report", "Print the line state report")

	fs.IntP(FlagPort, "p", ptt.DefaultPort, fmt.Sprintf("Serial port number [0-%d]", ptt.MaxPort))
	fs.StringP(FlagDevice, "d", "", "Serial device name, e.g. '/dev/ttyS0'")
	fs.StringP(FlagLine, "l", "", "Line to control [NONE, DTR, RTS, BOTH]")
	fs.StringP(FlagFile, "f", DefaultFile, "Use alternate config file")
	fs.String(FlagLogFile, "", "Also write diagnostics to a rotating log file")
}

func toggled(fs *pflag.FlagSet, on, off string) Setting[bool] {
	if !fs.Changed(on) && !fs.Changed(off) {
		return Setting[bool]{}
	}
	return parseBool(fs.Lookup(on).Value.String())
}

// FromFlags returns the layer of flags the user actually gave; flags left
// at their defaults are not provided.
func FromFlags(fs *pflag.FlagSet) Layer {
	l := Layer{Name: "command line"}
	l.Verbose = toggled(fs, FlagVerbose, FlagBrief)
	l.Debug = toggled(fs, FlagDebug, FlagNoDebug)
	l.Quiet = toggled(fs, FlagQuiet, FlagUnquiet)

	if fs.Changed(FlagPort) {
		n, err := fs.GetInt(FlagPort)
		if err != nil {
			l.Port = Invalid[int](fmt.Errorf("%w: --%s: %w", ptt.ErrUsage, FlagPort, err))
		} else {
			l.Port = Value(n)
		}
	}
	if fs.Changed(FlagDevice) {
		l.Device = parseDevice(fs.Lookup(FlagDevice).Value.String())
	}
	if fs.Changed(FlagLine) {
		l.Line = parseLineName(fs.Lookup(FlagLine).Value.String())
	}
	if fs.Changed(FlagLogFile) {
		l.LogFile = Value(fs.Lookup(FlagLogFile).Value.String())
	}
	return l
}

// FromArgs reads the optional positional line state.
func FromArgs(args []string) (Layer, error) {
	l := Layer{Name: "command line"}
	switch len(args) {
	case 0:
	case 1:
		on, err := ParseState(args[0])
		if err != nil {
			return Layer{}, err
		}
		l.State = Value(on)
	default:
		return Layer{}, fmt.Errorf("%w: expected at most one state argument, got %d", ptt.ErrUsage, len(args))
	}
	return l, nil
}

// FilePath returns the configuration file to read and whether the user named
// it explicitly (--file, then PTT_FILE).
func FilePath(fs *pflag.FlagSet, env *viper.Viper) (string, bool) {
	if fs.Changed(FlagFile) {
		return fs.Lookup(FlagFile).Value.String(), true
	}
	if env != nil && env.IsSet(keyFile) {
		return env.GetString(keyFile), true
	}
	return DefaultFile, false
}
