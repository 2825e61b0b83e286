package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.Mutex
	sugar = zap.NewNop().Sugar()
)

// Init builds the process logger at the given level ("debug", "info",
// "error"). An unknown or empty level falls back to info. Init may be called
// again to change the level.
func Init(level string) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		return
	}

	mu.Lock()
	sugar = logger.Sugar()
	mu.Unlock()
}

func Debug(msg string, kv ...any) {
	sugar.Debugw(msg, kv...)
}

func Info(msg string, kv ...any) {
	sugar.Infow(msg, kv...)
}

// Error logs msg with err prepended into the key-value list.
func Error(msg string, err error, kv ...any) {
	extended := append([]any{"err", err}, kv...)
	sugar.Errorw(msg, extended...)
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = sugar.Sync()
}
