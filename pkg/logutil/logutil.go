// Copyright 2026 The Quiver Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil wraps the global zap logger for the engine. Operators
// log through the package-level helpers so that the sink and level are
// configured once per process.
package logutil

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig describes the process-wide logging setup.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Filename, when set, sends output to a size-rotated file instead
	// of stderr.
	Filename string `toml:"filename"`
	// MaxSize is the rotation threshold in megabytes.
	MaxSize int `toml:"max-size"`
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `toml:"max-backups"`
}

var (
	once   sync.Once
	logger = zap.NewNop()
)

// Setup installs the global logger. It is a no-op after the first call.
func Setup(cfg LogConfig) {
	once.Do(func() {
		logger = newLogger(cfg)
		zap.ReplaceGlobals(logger)
	})
}

func newLogger(cfg LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			level = zapcore.InfoLevel
		}
	}

	var sink zapcore.WriteSyncer
	if cfg.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// GetLogger returns the configured logger, a nop logger before Setup.
func GetLogger() *zap.Logger {
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Debugf(format string, args ...any) {
	logger.Sugar().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Sugar().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Sugar().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Sugar().Errorf(format, args...)
}
