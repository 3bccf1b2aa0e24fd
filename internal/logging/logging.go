// internal/logging/logging.go
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the diagnostic sinks. The console sink always writes to the
// stderr the app was handed; File additionally enables a rolling JSON log.
// Diagnostics never go to stdout, which belongs to the user-facing output.
type Config struct {
	File       string // rolling JSON sink path; empty disables
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Level      zapcore.Level
}

// New builds the logger and returns it with a flush func for defer.
func New(cfg Config, stderr io.Writer) (*zap.SugaredLogger, func()) {
	encCfg := zap.NewDevelopmentEncoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(stderr), cfg.Level),
	}

	if cfg.File != "" {
		sink := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, 10),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 14),
		}
		cores = append(cores,
			zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(sink), cfg.Level))
	}

	lg := zap.New(zapcore.NewTee(cores...))
	return lg.Sugar(), func() { _ = lg.Sync() }
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
