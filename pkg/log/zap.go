package log

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrMissingDSN error = errors.New("sentry dsn is empty")

// NewZapLogger returns a JSON logger writing to stdout at the given level.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core, zap.AddCaller()).Named(name).Sugar()
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(level string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}

type SentryConfig struct {
	DSN         string
	Environment string
	Debug       bool
	Tags        map[string]string
}

// AttachSentry forwards error level entries of logger to Sentry and keeps
// lower levels as breadcrumbs. The returned flush function should be called
// before the process exits.
func AttachSentry(logger *zap.SugaredLogger, cfg SentryConfig) (*zap.SugaredLogger, func(time.Duration) bool, error) {
	if cfg.DSN == "" {
		return nil, nil, ErrMissingDSN
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Debug:       cfg.Debug,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create sentry client: %w", err)
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		Tags:              cfg.Tags,
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("create sentry core: %w", err)
	}

	return zapsentry.AttachCoreToLogger(core, logger.Desugar()).Sugar(), client.Flush, nil
}
