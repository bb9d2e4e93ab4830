package logx

import (
	"io"
	"log"
)

// StdLogger wraps the standard library's log.Logger, for callers that
// want timestamps and output routing handled by the familiar log
// flags instead of DefaultLogger's own formatting.
type StdLogger struct {
	logger *log.Logger
	level  Level
	output io.Writer
	fields map[string]interface{}
}

// NewStdLogger creates a StdLogger writing to output at or above level.
func NewStdLogger(level Level, output io.Writer) *StdLogger {
	return &StdLogger{
		logger: log.New(output, "", log.LstdFlags|log.Lmicroseconds),
		level:  level,
		output: output,
		fields: make(map[string]interface{}),
	}
}

func (l *StdLogger) Debug(msg string, args ...interface{}) { l.print(LevelDebug, msg, args...) }
func (l *StdLogger) Info(msg string, args ...interface{})  { l.print(LevelInfo, msg, args...) }
func (l *StdLogger) Warn(msg string, args ...interface{})  { l.print(LevelWarn, msg, args...) }
func (l *StdLogger) Error(msg string, args ...interface{}) { l.print(LevelError, msg, args...) }

func (l *StdLogger) print(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf("[%s] "+msg, append([]interface{}{level}, args...)...)
}

// WithField returns a derived logger carrying one extra field.
func (l *StdLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a derived logger carrying the given fields merged
// over the receiver's own. Fields are not yet rendered by print; they
// exist so callers composing StdLogger with DefaultLogger-style call
// sites don't need a type switch.
func (l *StdLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	next := NewStdLogger(l.level, l.output)
	next.fields = merged
	return next
}
