package utils

import (
    "os"
    "strings"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
    "gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. With a file it tees JSON output to
// stdout and a size-rotated log; otherwise it is a plain production logger.
func NewLogger(level, file string) *zap.Logger {
    lvl := parseLevel(level)
    if file == "" {
        cfg := zap.NewProductionConfig()
        cfg.Level = zap.NewAtomicLevelAt(lvl)
        l, _ := cfg.Build()
        return l
    }
    enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
    rotated := &lumberjack.Logger{
        Filename:   file,
        MaxSize:    50, // MB
        MaxBackups: 5,
        MaxAge:     14, // days
    }
    core := zapcore.NewTee(
        zapcore.NewCore(enc, zapcore.AddSync(rotated), lvl),
        zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl),
    )
    return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
    switch strings.ToLower(level) {
    case "debug":
        return zapcore.DebugLevel
    case "warn", "warning":
        return zapcore.WarnLevel
    case "error":
        return zapcore.ErrorLevel
    default:
        return zapcore.InfoLevel
    }
}
