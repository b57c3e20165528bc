package signalboard

import (
	"io"

	"github.com/rs/zerolog"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New] and
// debug logging is disabled.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// ZerologLogger adapts a [zerolog.Logger] to the [RequestLogger] interface.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a [RequestLogger] backed by the given zerolog
// logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

func (l *ZerologLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l *ZerologLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *ZerologLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}

// newDebugLogger builds the logger used when debug logging is enabled and the
// caller has not supplied one. Request and response dumps are written to w as
// timestamped zerolog events at debug level.
func newDebugLogger(w io.Writer) RequestLogger {
	return NewZerologLogger(zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel))
}
