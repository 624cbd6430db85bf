package ioport

import "github.com/allbin/ptt"

// Sim is an in-memory register file. A read returns exactly the last byte
// written unless stuck bits are configured, which model hardware that does
// not follow every write.
type Sim struct {
	gate
	regs       map[ptt.Address]byte
	stuck      map[ptt.Address]stuckBits
	acquireErr error

	Acquisitions int // number of successful Acquire calls
	Reads        int
	Writes       int
}

type stuckBits struct {
	mask  byte
	value byte
}

var _ ptt.Bus = (*Sim)(nil)

// SimOption is a functional option for configuring a Sim
type SimOption func(*Sim)

// WithRegister presets the value of a register.
func WithRegister(addr ptt.Address, v byte) SimOption {
	return func(s *Sim) {
		s.regs[addr] = v
	}
}

// WithAcquireError makes Acquire fail with err.
func WithAcquireError(err error) SimOption {
	return func(s *Sim) {
		s.acquireErr = err
	}
}

// WithStuckBits pins the bits in mask of a register to value regardless of
// what is written.
func WithStuckBits(addr ptt.Address, mask, value byte) SimOption {
	return func(s *Sim) {
		s.stuck[addr] = stuckBits{mask: mask, value: value & mask}
	}
}

// NewSim returns a Sim with every register zero unless preset.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		regs:  make(map[ptt.Address]byte),
		stuck: make(map[ptt.Address]stuckBits),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sim) Acquire(addr ptt.Address, size int) error {
	if s.acquireErr != nil {
		return s.acquireErr
	}
	if err := s.gate.acquire(addr, size); err != nil {
		return err
	}
	s.Acquisitions++
	return nil
}

func (s *Sim) ReadRegister(addr ptt.Address) (byte, error) {
	if err := s.check(addr); err != nil {
		return 0, err
	}
	s.Reads++
	return s.regs[addr], nil
}

func (s *Sim) WriteRegister(addr ptt.Address, v byte) error {
	if err := s.check(addr); err != nil {
		return err
	}
	s.Writes++
	if st, ok := s.stuck[addr]; ok {
		v = v&^st.mask | st.value
	}
	s.regs[addr] = v
	return nil
}

func (s *Sim) Close() error {
	s.gate = gate{}
	return nil
}

// Region returns the acquired region, for inspection in tests.
func (s *Sim) Region() (ptt.Address, int) {
	return s.from, s.size
}

// Peek returns a register value without access checks.
func (s *Sim) Peek(addr ptt.Address) byte {
	return s.regs[addr]
}
