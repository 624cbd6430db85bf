package ioport

import (
	"fmt"

	"github.com/allbin/ptt"
	"go.uber.org/zap"
)

// Trace is a ptt.Bus decorator that logs every access at debug level.
type Trace struct {
	bus ptt.Bus
	log *zap.Logger
}

var _ ptt.Bus = (*Trace)(nil)

// NewTrace wraps bus so that all accesses are written to log.
func NewTrace(bus ptt.Bus, log *zap.Logger) *Trace {
	return &Trace{bus: bus, log: log.Named("ioport")}
}

func (t *Trace) Acquire(addr ptt.Address, size int) error {
	err := t.bus.Acquire(addr, size)
	t.log.Debug("acquire", zap.Stringer("addr", addr), zap.Int("size", size), zap.Error(err))
	return err
}

func (t *Trace) ReadRegister(addr ptt.Address) (byte, error) {
	v, err := t.bus.ReadRegister(addr)
	t.log.Debug("r", zap.Stringer("addr", addr), zap.String("value", fmt.Sprintf("0x%02X", v)), zap.Error(err))
	return v, err
}

func (t *Trace) WriteRegister(addr ptt.Address, v byte) error {
	err := t.bus.WriteRegister(addr, v)
	t.log.Debug("w", zap.Stringer("addr", addr), zap.String("value", fmt.Sprintf("0x%02X", v)), zap.Error(err))
	return err
}

func (t *Trace) Close() error {
	return t.bus.Close()
}
