// Package ptt keys a radio transmitter (push-to-talk) through the DTR and RTS
// lines of a legacy 8250 compatible serial port by writing the UART's Modem
// Control Register directly, bypassing the kernel serial driver.
//
// This package only works with classic 8250 style hardware, or hardware that
// maps its control lines to the same register bits: MCR at base+4, DTR in
// bit 0, RTS in bit 1.
//
// # Basic Usage
//
// Build a configuration and run it against a Bus:
//
//	cfg, err := ptt.NewConfig(
//	    ptt.WithDevice("/dev/ttyS0"),
//	    ptt.WithLine(ptt.LineRTS),
//	    ptt.WithState(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bus := ioport.NewDevPort()
//	defer bus.Close()
//
//	res, err := ptt.NewController(bus).Run(cfg)
//
// Run reads the register, changes only the bits of the selected lines, writes
// the result and reads it back for display.
//
// # Bit Model
//
// NewValue is the pure read-modify-write step:
//
//	ptt.NewValue(0x42, ptt.LineRTS, false) // 0x40: RTS cleared, bit 6 kept
//	ptt.NewValue(0x00, ptt.LineBoth, true) // 0x03
//	ptt.NewValue(0x0B, ptt.LineNone, true) // 0x0B: unchanged
//
// # Port Addresses
//
// Port indices 0-7 map to fixed base addresses (see BaseAddress). Unknown
// indices fall back to the port 0 address; the Controller logs a warning
// when that happens.
//
// # Error Handling
//
// Errors wrap one of ErrUsage, ErrConfiguration, ErrPermission or
// ErrRegisterIO. Use errors.Is to tell them apart, or ExitCode to map them to
// a process exit status.
//
// # Permissions
//
// Raw port access requires root or CAP_SYS_RAWIO:
//
//	sudo setcap cap_sys_rawio=ep "$(which ptt)"
package ptt
