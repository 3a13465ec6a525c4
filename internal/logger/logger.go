// Package logger wires zap with a console core and a rotating file core.
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	global *zap.Logger
	sugar  *zap.SugaredLogger
	once   sync.Once
)

// Init builds the global logger. Safe to call more than once; only the
// first call wins.
func Init(level, path string) {
	once.Do(func() {
		var lvl zapcore.Level
		switch level {
		case "debug":
			lvl = zapcore.DebugLevel
		case "warn":
			lvl = zapcore.WarnLevel
		case "error":
			lvl = zapcore.ErrorLevel
		default:
			lvl = zapcore.InfoLevel
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			lvl,
		)

		cores := []zapcore.Core{consoleCore}
		if path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				fileCore := zapcore.NewCore(
					zapcore.NewJSONEncoder(encCfg),
					zapcore.AddSync(&lumberjack.Logger{
						Filename:   path,
						MaxSize:    50, // MB
						MaxBackups: 3,
						MaxAge:     28, // days
						Compress:   true,
					}),
					lvl,
				)
				cores = append(cores, fileCore)
			}
		}

		global = zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
		sugar = global.Sugar()
	})
}

// L returns the global structured logger, initializing a default one if
// Init was never called (handy in tests).
func L() *zap.Logger {
	if global == nil {
		Init("info", "")
	}
	return global
}

// S returns the sugared logger.
func S() *zap.SugaredLogger {
	if sugar == nil {
		Init("info", "")
	}
	return sugar
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}

func Debugf(format string, args ...any) { S().Debugf(format, args...) }
func Infof(format string, args ...any)  { S().Infof(format, args...) }
func Warnf(format string, args ...any)  { S().Warnf(format, args...) }
func Errorf(format string, args ...any) { S().Errorf(format, args...) }
