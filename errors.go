package ptt

import "errors"

// Predefined error types for robust error handling
var (
	ErrUsage         = errors.New("usage error")
	ErrConfiguration = errors.New("configuration error")
	ErrPermission    = errors.New("permission denied accessing I/O port")
	ErrRegisterIO    = errors.New("register access failed")
)

// Exit codes returned to the invoking shell, one per error category.
const (
	ExitOK            = 0
	ExitHelp          = 1 // help and version banners
	ExitUsage         = 2
	ExitConfiguration = 3
	ExitPermission    = 4
	ExitRegisterIO    = 5
)

// ExitCode maps an error returned by this package to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, ErrPermission):
		return ExitPermission
	default:
		return ExitRegisterIO
	}
}
