package config

import (
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. PTT_LINE.
const EnvPrefix = "PTT"

// Environment keys, shared with the flag names where they overlap.
const (
	keyPort    = "port"
	keyDevice  = "device"
	keyLine    = "line"
	keyFile    = "file"
	keyVerbose = "verbose"
	keyQuiet   = "quiet"
	keyDebug   = "debug"
	keyLevel   = "level"
	keyLogFile = "log_file"
)

// NewEnv returns a viper instance bound to the PTT_* environment.
func NewEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// FromEnv reads the PTT_* environment variables. Empty variables count as
// not set.
func FromEnv(v *viper.Viper) Layer {
	l := Layer{Name: "environment"}
	if v.IsSet(keyPort) {
		l.Port = parseInt(v.GetString(keyPort))
	}
	if v.IsSet(keyDevice) {
		l.Device = parseDevice(v.GetString(keyDevice))
	}
	if v.IsSet(keyLine) {
		l.Line = parseLineName(v.GetString(keyLine))
	}
	if v.IsSet(keyVerbose) {
		l.Verbose = parseBool(v.GetString(keyVerbose))
	}
	if v.IsSet(keyQuiet) {
		l.Quiet = parseBool(v.GetString(keyQuiet))
	}
	if v.IsSet(keyDebug) {
		l.Debug = parseBool(v.GetString(keyDebug))
	}
	if v.IsSet(keyLevel) {
		l.Level = parseInt(v.GetString(keyLevel))
	}
	if v.IsSet(keyLogFile) {
		l.LogFile = Value(v.GetString(keyLogFile))
	}
	return l
}
