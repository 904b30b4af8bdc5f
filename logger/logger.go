package logger

import (
	"fmt"
	"os"

	"fruitbasket-backend/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Development gets a colored console encoder at
// debug level; everything else gets JSON at info level. LOG_LEVEL and LOG_ENCODING
// override either default.
func New(cfg config.LoggerConfig, appEnv string) (*zap.Logger, error) {
	development := appEnv == "development" || appEnv == "dev"

	encoding := "json"
	level := "info"
	if development {
		encoding = "console"
		level = "debug"
	}
	if cfg.Encoding != "" {
		encoding = cfg.Encoding
	}
	if cfg.Level != "" {
		level = cfg.Level
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch encoding {
	case "console":
		if development {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		return nil, fmt.Errorf("invalid log encoding %q", encoding)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(lvl))

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if development {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}

// Must is New for process entry points, where a broken logger config is fatal.
func Must(cfg config.LoggerConfig, appEnv string) *zap.Logger {
	log, err := New(cfg, appEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return log
}
