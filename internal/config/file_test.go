package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allbin/ptt"
	"github.com/allbin/ptt/internal/inifile"
)

const sampleConf = `
[DEBUG]
Debug = 1
Verbose = 1
Quiet = 0
Level = 2
LogFile = /var/log/ptt.log

[DEVICES]
DeviceName = /dev/ttyS1
LineName = RTS

[LINES]
Lines = 1
`

func TestFromBytes(t *testing.T) {
	l, err := FromBytes("ptt.conf", []byte(sampleConf))
	require.NoError(t, err)

	cfg, err := Resolve(Defaults(), l)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, 2, cfg.Level)
	assert.Equal(t, "/var/log/ptt.log", cfg.LogFile)
	assert.Equal(t, 1, cfg.Port)
	assert.Equal(t, ptt.LineRTS, cfg.Line)
	assert.Equal(t, 1, cfg.Lines)
}

func TestFromBytesControlLineNumber(t *testing.T) {
	l, err := FromBytes("ptt.conf", []byte("[DEVICES]\nLineName = DTR\nControlLine = 3\nPortNumber = 2\n"))
	require.NoError(t, err)

	cfg, err := Resolve(Defaults(), l)
	require.NoError(t, err)
	assert.Equal(t, ptt.LineBoth, cfg.Line)
	assert.Equal(t, 2, cfg.Port)
}

func TestFromBytesUnknownKey(t *testing.T) {
	_, err := FromBytes("ptt.conf", []byte("[DEVICES]\nBaudRate = 9600\n"))
	assert.ErrorIs(t, err, ptt.ErrConfiguration)
	assert.ErrorIs(t, err, inifile.ErrUnknownKey)

	_, err = FromBytes("ptt.conf", []byte("Verbose = 1\n"))
	assert.ErrorIs(t, err, inifile.ErrUnknownKey, "keys outside a section are unknown")
}

func TestFromBytesInvalidValueIsDeferred(t *testing.T) {
	l, err := FromBytes("ptt.conf", []byte("[DEVICES]\nLineName = FOO\n"))
	require.NoError(t, err, "bad values fail at resolution, not while parsing")

	_, err = Resolve(Defaults(), l)
	assert.ErrorIs(t, err, ptt.ErrConfiguration)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptt.conf")
	require.NoError(t, os.WriteFile(path, []byte(sampleConf), 0644))

	l, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.Name)
	assert.True(t, l.Line.Provided())
	assert.False(t, l.State.Provided())

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.conf"))
	assert.ErrorIs(t, err, ptt.ErrConfiguration)
	assert.True(t, isNotExist(err))
}
