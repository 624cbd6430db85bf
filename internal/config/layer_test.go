package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allbin/ptt"
)

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(Defaults())
	require.NoError(t, err)
	assert.Equal(t, ptt.DefaultConfig(), cfg)
}

func TestResolvePrecedence(t *testing.T) {
	file := Layer{Name: "file", Line: Value(ptt.LineDTR), Verbose: Value(true)}
	flags := Layer{Name: "command line", Line: Value(ptt.LineRTS)}

	cfg, err := Resolve(Defaults(), file, flags)
	require.NoError(t, err)
	assert.Equal(t, ptt.LineRTS, cfg.Line)
	assert.True(t, cfg.Verbose, "file value kept where the command line is silent")

	cfg, err = Resolve(Defaults(), file)
	require.NoError(t, err)
	assert.Equal(t, ptt.LineDTR, cfg.Line)
}

func TestResolveInvalidWinningValueFails(t *testing.T) {
	bad := Layer{Name: "ptt.conf", Line: parseLineName("FOO")}

	_, err := Resolve(Defaults(), bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ptt.ErrConfiguration)
	assert.Contains(t, err.Error(), "ptt.conf")

	// A valid value above the invalid one wins
	cfg, err := Resolve(Defaults(), bad, Layer{Name: "command line", Line: Value(ptt.LineDTR)})
	require.NoError(t, err)
	assert.Equal(t, ptt.LineDTR, cfg.Line)
}

func TestResolvePortBeatsDeviceInSameLayer(t *testing.T) {
	l := Layer{Name: "file", Device: Value("/dev/ttyS1"), Port: Value(3)}

	cfg, err := Resolve(Defaults(), l)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Port)
	assert.Equal(t, "/dev/ttyS3", cfg.Device)
}

func TestResolveHigherDeviceBeatsLowerPort(t *testing.T) {
	file := Layer{Name: "file", Port: Value(3)}
	flags := Layer{Name: "command line", Device: Value("/dev/ttyS1")}

	cfg, err := Resolve(Defaults(), file, flags)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Port)
}

func TestResolveLineNumberBeatsLineName(t *testing.T) {
	l := Layer{Name: "file", Line: Value(ptt.LineDTR), LineNumber: Value(ptt.LineRTS)}

	cfg, err := Resolve(Defaults(), l)
	require.NoError(t, err)
	assert.Equal(t, ptt.LineRTS, cfg.Line)
}

func TestResolveLinesConsistency(t *testing.T) {
	_, err := Resolve(Defaults(), Layer{Name: "file", Line: Value(ptt.LineDTR), Lines: Value(2)})
	assert.ErrorIs(t, err, ptt.ErrConfiguration)

	cfg, err := Resolve(Defaults(), Layer{Name: "file", Line: Value(ptt.LineBoth), Lines: Value(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Lines)
}

func TestSetting(t *testing.T) {
	var unset Setting[int]
	assert.False(t, unset.Provided())

	v, err := Value(4).Get()
	assert.NoError(t, err)
	assert.Equal(t, 4, v)

	bad := Invalid[int](errors.New("nope"))
	assert.True(t, bad.Provided())
	_, err = bad.Get()
	assert.EqualError(t, err, "nope")
}
