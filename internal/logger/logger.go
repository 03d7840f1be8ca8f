package logger

import (
	"fmt"
	"time"
)

// Logger is a named registry entry with a plain file sink and a colored
// console sink attached. Writes are synchronous and unbuffered; there is
// no mutex on the write path, so concurrent callers sharing one logger may
// interleave lines.
type Logger struct {
	name     string
	minLevel Level
	sinks    []*sink
	now      func() time.Time
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.minLevel {
		return
	}

	rec := Record{
		Time:    l.now(),
		Name:    l.name,
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}

	for _, s := range l.sinks {
		s.emit(rec)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Critical logs a critical message
func (l *Logger) Critical(format string, args ...interface{}) {
	l.log(LevelCritical, format, args...)
}
