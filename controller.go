package ptt

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Bus is privileged byte access to I/O ports.
//
// Acquire must be called exactly once, before any register access, and only
// for the region that will be touched.
type Bus interface {
	Acquire(addr Address, size int) error
	ReadRegister(addr Address) (byte, error)
	WriteRegister(addr Address, v byte) error
	Close() error
}

// Result describes one pass over the Modem Control Register.
type Result struct {
	Address Address // MCR address that was accessed
	Before  byte    // value read before any change
	Written byte    // value written, equal to Before when nothing was written
	After   byte    // value read back after the write
}

// Controller drives the MCR of one UART through a Bus.
type Controller struct {
	bus    Bus
	out    io.Writer
	log    *zap.Logger
	styled bool
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithOutput sets where the line state report is written (default os.Stdout)
func WithOutput(w io.Writer) ControllerOption {
	return func(c *Controller) {
		c.out = w
	}
}

// WithLogger sets the diagnostics logger (default no-op)
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) {
		c.log = l
	}
}

// WithPlainOutput disables terminal styling of the report
func WithPlainOutput() ControllerOption {
	return func(c *Controller) {
		c.styled = false
	}
}

// NewController returns a Controller using bus for register access.
func NewController(bus Bus, opts ...ControllerOption) *Controller {
	c := &Controller{
		bus:    bus,
		out:    os.Stdout,
		log:    zap.NewNop(),
		styled: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run sets the configured control lines to the configured state: it reads
// the MCR, changes only the selected bits, writes the result and reads it
// back for display. Nothing is retried.
func (c *Controller) Run(cfg Config) (Result, error) {
	res, err := c.open(cfg)
	if err != nil {
		return res, err
	}

	// Quiet suppresses only the final report; verbose still shows the start.
	if cfg.Verbose || !cfg.Quiet {
		c.report(phaseWas, cfg.Line, res.Before)
	}

	res.Written = NewValue(res.Before, cfg.Line, cfg.State)
	if cfg.Verbose {
		c.report(phaseDesired, cfg.Line, res.Written)
	}
	c.log.Info("computed new MCR value",
		zap.String("line", cfg.Line.String()),
		zap.Bool("state", cfg.State),
		zap.String("value", hex(res.Written)),
		zap.String("control_bits", hex(Reportable(res.Written))))

	if cfg.Line == LineNone {
		c.log.Debug("no control line selected, register left untouched")
		res.After = res.Before
	} else {
		if err := c.bus.WriteRegister(res.Address, res.Written); err != nil {
			return res, fmt.Errorf("%w: write %s: %w", ErrRegisterIO, res.Address, err)
		}
		res.After, err = c.bus.ReadRegister(res.Address)
		if err != nil {
			return res, fmt.Errorf("%w: read back %s: %w", ErrRegisterIO, res.Address, err)
		}
		dtr, rts := LineStates(res.After)
		c.log.Info("read back MCR",
			zap.String("value", hex(res.After)),
			zap.Bool("dtr", dtr),
			zap.Bool("rts", rts))
	}

	if !cfg.Quiet {
		c.report(phaseNow, cfg.Line, res.After)
	}
	return res, nil
}

// Status reads the MCR without modifying it.
func (c *Controller) Status(cfg Config) (Result, error) {
	res, err := c.open(cfg)
	if err != nil {
		return res, err
	}
	res.After = res.Before
	return res, nil
}

// open resolves the MCR address, acquires access to it and reads its value.
func (c *Controller) open(cfg Config) (Result, error) {
	var res Result

	base, ok := BaseAddress(cfg.Port)
	if !ok {
		c.log.Warn("unknown port index, using port 0",
			zap.Int("port", cfg.Port),
			zap.String("base", base.String()))
	}
	res.Address, _ = MCRAddress(cfg.Port)
	c.log.Info("resolved UART",
		zap.String("device", cfg.Device),
		zap.String("base", base.String()),
		zap.String("mcr", res.Address.String()))

	if err := c.bus.Acquire(res.Address, AcquireSize); err != nil {
		return res, fmt.Errorf("%w: ioperm(%s): %w", ErrPermission, res.Address, err)
	}

	v, err := c.bus.ReadRegister(res.Address)
	if err != nil {
		return res, fmt.Errorf("%w: read %s: %w", ErrRegisterIO, res.Address, err)
	}
	res.Before = v
	res.Written = v
	c.log.Info("initial MCR value", zap.String("value", hex(v)))
	if v&maskAbsent != 0 {
		c.log.Warn("MCR initial value indicates no UART present",
			zap.String("mcr", res.Address.String()),
			zap.String("value", hex(v)))
	}
	return res, nil
}

func hex(v byte) string {
	return fmt.Sprintf("0x%02X", v)
}
