// Package log provides the structured logger used throughout the
// reactor, transport, and collaborator packages. The calling
// convention (Debugf/Infof/Warnf/Errorf) matches the one used
// pervasively by the teacher's game/room.go and game/peer.go.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface passed to every stateful component.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	With(args ...interface{}) Logger
}

type sugared struct {
	*zap.SugaredLogger
}

func (s sugared) With(args ...interface{}) Logger {
	return sugared{s.SugaredLogger.With(args...)}
}

// Config controls where and how log output is written.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// FilePath rotates through lumberjack when set; stderr otherwise.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a Logger from the given Config.
func New(cfg Config) Logger {
	level := parseLevel(cfg.Level)

	var ws zapcore.WriteSyncer
	if cfg.FilePath != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 5),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
		})
	} else {
		ws = zapcore.AddSync(os.Stderr)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, level)
	base := zap.New(core, zap.AddCaller())
	return sugared{base.Sugar()}
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Nop returns a Logger that discards everything; used in tests.
func Nop() Logger {
	return sugared{zap.NewNop().Sugar()}
}
