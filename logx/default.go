package logx

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultLogger writes leveled, timestamped lines with inline fields to
// an io.Writer, guarded by a mutex so lines from concurrent callers are
// written whole rather than interleaved.
type DefaultLogger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	fields map[string]interface{}
}

// NewDefaultLogger creates a DefaultLogger writing to output at or
// above level.
func NewDefaultLogger(level Level, output io.Writer) *DefaultLogger {
	return &DefaultLogger{level: level, output: output, fields: make(map[string]interface{})}
}

func (l *DefaultLogger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }
func (l *DefaultLogger) Info(msg string, args ...interface{})  { l.log(LevelInfo, msg, args...) }
func (l *DefaultLogger) Warn(msg string, args ...interface{})  { l.log(LevelWarn, msg, args...) }
func (l *DefaultLogger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

// WithField returns a derived logger carrying one extra field.
func (l *DefaultLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a derived logger carrying the given fields merged
// over the receiver's own.
func (l *DefaultLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &DefaultLogger{level: l.level, output: l.output, fields: merged}
}

func (l *DefaultLogger) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	formatted := fmt.Sprintf(msg, args...)

	fieldStr := ""
	for k, v := range l.fields {
		fieldStr += fmt.Sprintf(" %s=%v", k, v)
	}

	line := fmt.Sprintf("[%s] [%s]%s %s\n", timestamp, level, fieldStr, formatted)
	_, _ = l.output.Write([]byte(line))
}
