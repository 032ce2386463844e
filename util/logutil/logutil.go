package logutil

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
	Name   string `mapstructure:"name"`
}

func DefaultConfig() Config {
	return Config{Level: "info", Format: "console", Name: "formlayout"}
}

// New builds a logger writing to w. An unknown level defaults to info.
func New(cfg Config, w zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}
	core := zapcore.NewCore(encoder(cfg), w, level)
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
	if cfg.Name != "" {
		logger = logger.Named(cfg.Name)
	}
	return logger
}

func NewStderr(cfg Config) *zap.Logger {
	return New(cfg, zapcore.Lock(os.Stderr))
}

func encoder(cfg Config) zapcore.Encoder {
	ecfg := zap.NewProductionEncoderConfig()
	ecfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if cfg.Format == "json" {
		ecfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(ecfg)
	}
	ecfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ecfg)
}
