// Package logging builds the zap logger used for diagnostics. Diagnostics
// go to stderr so stdout carries only the line state report.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/allbin/ptt"
)

// Rotation limits for the diagnostics log file.
const (
	maxSizeMB  = 1
	maxBackups = 3
	maxAgeDays = 28
)

// TraceLevel is the debug detail level from which every register access is
// logged.
const TraceLevel = 3

// Level returns the minimum level to log for cfg: debug diagnostics, the
// verbose report, or warnings and errors only.
func Level(cfg ptt.Config) zapcore.Level {
	switch {
	case cfg.Debug:
		return zapcore.DebugLevel
	case cfg.Verbose:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

// Tracing reports whether cfg asks for every register access to be logged.
func Tracing(cfg ptt.Config) bool {
	return cfg.Debug && cfg.Level >= TraceLevel
}

// New returns a logger writing human-readable output to w and, when
// cfg.LogFile is set, JSON lines to a rotating file. File entries carry a
// run ID so invocations sharing the file can be told apart.
func New(cfg ptt.Config, w io.Writer) (*zap.Logger, error) {
	level := Level(cfg)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig()), zapcore.AddSync(w), level),
	}

	if cfg.LogFile != "" {
		sink, err := fileSyncer(cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}
		file := zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig()), sink, level)
		cores = append(cores, file.With([]zapcore.Field{zap.String("run", uuid.NewString())}))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	config.CallerKey = ""
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	return config
}

func fileEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "timestamp"
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncodeLevel = zapcore.LowercaseLevelEncoder
	config.MessageKey = "message"
	return config
}

// fileSyncer returns a rotating file sink, creating its directory if needed.
func fileSyncer(path string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}), nil
}
