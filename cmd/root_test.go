package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/allbin/ptt"
	"github.com/allbin/ptt/internal/ioport"
)

// newTestApp returns an app backed by sim, run from an empty directory so
// no ptt.conf is picked up.
func newTestApp(t *testing.T, sim *ioport.Sim) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}

	var stdout, stderr bytes.Buffer
	return &app{
		stdout:  &stdout,
		stderr:  &stderr,
		env:     viper.New(),
		openBus: func() ptt.Bus { return sim },
		plain:   true,
	}, &stdout, &stderr
}

func TestExecuteKeysLine(t *testing.T) {
	sim := ioport.NewSim()
	a, stdout, stderr := newTestApp(t, sim)

	if code := a.execute([]string{"-l", "DTR", "1"}); code != ptt.ExitOK {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	if got := sim.Peek(0x3FC); got != 0x01 {
		t.Errorf("Expected register 0x01, got 0x%02X", got)
	}
	want := "PTT (DTR) was: OFF\nPTT (DTR) now: ON\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestExecuteDefaultsToBothOff(t *testing.T) {
	sim := ioport.NewSim(ioport.WithRegister(0x2FC, 0x0B))
	a, _, stderr := newTestApp(t, sim)

	if code := a.execute([]string{"--port", "1", "--quiet"}); code != ptt.ExitOK {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	if got := sim.Peek(0x2FC); got != 0x08 {
		t.Errorf("Expected register 0x08, got 0x%02X", got)
	}
}

func TestExecuteInvalidLine(t *testing.T) {
	sim := ioport.NewSim()
	a, _, stderr := newTestApp(t, sim)

	if code := a.execute([]string{"--line", "FOO", "1"}); code != ptt.ExitConfiguration {
		t.Errorf("Expected exit %d, got %d", ptt.ExitConfiguration, code)
	}
	if sim.Acquisitions != 0 {
		t.Errorf("Expected no I/O port access, got %d acquisitions", sim.Acquisitions)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Errorf("Expected an error message, got %q", stderr.String())
	}
}

func TestExecuteUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non-numeric state", []string{"on"}},
		{"too many states", []string{"1", "0"}},
		{"unknown flag", []string{"--bogus"}},
		{"bad line state word", []string{"dtr", "sideways"}},
		{"missing line state", []string{"rts"}},
		{"status takes no args", []string{"status", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := ioport.NewSim()
			a, _, stderr := newTestApp(t, sim)

			if code := a.execute(tt.args); code != ptt.ExitUsage {
				t.Errorf("Expected exit %d, got %d: %s", ptt.ExitUsage, code, stderr.String())
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Errorf("Expected usage text, got %q", stderr.String())
			}
			if sim.Acquisitions != 0 {
				t.Errorf("Expected no I/O port access")
			}
		})
	}
}

func TestExecuteHelpAndVersion(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--help"}, "Usage:"},
		{[]string{"-h"}, "Usage:"},
		{[]string{"help"}, "Usage:"},
		{[]string{"-v"}, "ptt version " + version},
		{[]string{"--version"}, "ptt version " + version},
	}

	for _, tt := range tests {
		sim := ioport.NewSim()
		a, stdout, _ := newTestApp(t, sim)

		if code := a.execute(tt.args); code != ptt.ExitHelp {
			t.Errorf("%v: expected exit %d, got %d", tt.args, ptt.ExitHelp, code)
		}
		if !strings.Contains(stdout.String(), tt.want) {
			t.Errorf("%v: output missing %q:\n%s", tt.args, tt.want, stdout.String())
		}
		if sim.Acquisitions != 0 {
			t.Errorf("%v: expected no I/O port access", tt.args)
		}
	}
}

func TestExecutePermissionDenied(t *testing.T) {
	sim := ioport.NewSim(ioport.WithAcquireError(errors.New("operation not permitted")))
	a, stdout, stderr := newTestApp(t, sim)

	if code := a.execute([]string{"1"}); code != ptt.ExitPermission {
		t.Errorf("Expected exit %d, got %d", ptt.ExitPermission, code)
	}
	if !strings.Contains(stderr.String(), "operation not permitted") {
		t.Errorf("Expected the OS error in %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("Unexpected report %q", stdout.String())
	}
}

func TestExecuteConfigFile(t *testing.T) {
	sim := ioport.NewSim()
	a, stdout, stderr := newTestApp(t, sim)

	conf := "[DEVICES]\nDeviceName = /dev/ttyS3\nLineName = RTS\n"
	if err := os.WriteFile("ptt.conf", []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}

	if code := a.execute([]string{"1"}); code != ptt.ExitOK {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	if got := sim.Peek(0x2EC); got != 0x02 {
		t.Errorf("Expected register 0x02 at 0x2EC, got 0x%02X", got)
	}
	if !strings.Contains(stdout.String(), "PTT (RTS) now: ON") {
		t.Errorf("Unexpected report %q", stdout.String())
	}
}

func TestExecuteMissingExplicitFile(t *testing.T) {
	sim := ioport.NewSim()
	a, _, _ := newTestApp(t, sim)

	if code := a.execute([]string{"-f", filepath.Join(t.TempDir(), "none.conf"), "1"}); code != ptt.ExitConfiguration {
		t.Errorf("Expected exit %d, got %d", ptt.ExitConfiguration, code)
	}
}

func TestExecuteLineCommand(t *testing.T) {
	sim := ioport.NewSim(ioport.WithRegister(0x2FC, 0x01))
	a, stdout, stderr := newTestApp(t, sim)

	if code := a.execute([]string{"rts", "on", "-p", "1"}); code != ptt.ExitOK {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	if got := sim.Peek(0x2FC); got != 0x03 {
		t.Errorf("Expected register 0x03, got 0x%02X", got)
	}
	want := "PTT (RTS) was: OFF\nPTT (RTS) now: ON\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestExecuteTraceLogsAccess(t *testing.T) {
	sim := ioport.NewSim()
	a, _, stderr := newTestApp(t, sim)

	if err := os.WriteFile("ptt.conf", []byte("[DEBUG]\nLevel = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if code := a.execute([]string{"--debug", "--quiet", "1"}); code != ptt.ExitOK {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	for _, msg := range []string{"ioport", "acquire", "0x3FC"} {
		if !strings.Contains(stderr.String(), msg) {
			t.Errorf("Trace output missing %q:\n%s", msg, stderr.String())
		}
	}
}

func TestStatusCommand(t *testing.T) {
	sim := ioport.NewSim(ioport.WithRegister(0x3FC, 0x0B))
	a, stdout, stderr := newTestApp(t, sim)

	if code := a.execute([]string{"status"}); code != ptt.ExitOK {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	if sim.Writes != 0 {
		t.Errorf("status wrote the register")
	}

	out := stdout.String()
	for _, s := range []string{"/dev/ttyS0", "0x3FC", "0x0B", "DTR", "RTS", "OUT2", "LOOP", "Data Terminal Ready", "ON", "OFF"} {
		if !strings.Contains(out, s) {
			t.Errorf("status output missing %q:\n%s", s, out)
		}
	}
}

func TestPortsCommand(t *testing.T) {
	a, stdout, stderr := newTestApp(t, ioport.NewSim())

	if code := a.execute([]string{"ports"}); code != ptt.ExitOK {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, s := range []string{"Port", "MCR", "/dev/ttyS0", "0x3F8", "0x3FC", "/dev/ttyS7", "0xDCD0", "0xDCD4"} {
		if !strings.Contains(out, s) {
			t.Errorf("ports output missing %q:\n%s", s, out)
		}
	}
}
