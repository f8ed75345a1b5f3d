package punycode

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/punycode/errors"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger.
// This must be called before any conversion runs.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// logFailure records a failed conversion at debug level and returns err.
func logFailure(err error, p Progress) error {
	if err == nil {
		return nil
	}
	fields := []zap.Field{
		zap.Int("written", p.Written),
		zap.Int("consumed", p.Consumed),
		zap.Error(err),
	}
	if e, ok := err.(*errors.Error); ok {
		fields = append(fields,
			zap.String("phase", string(e.Phase)),
			zap.String("kind", string(e.Kind)),
			zap.Int("offset", e.Offset))
	}
	Logger().Debug("punycode conversion failed", fields...)
	return err
}
