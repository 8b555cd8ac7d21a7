// Package logging provides a simple leveled logger with component prefixes.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a simple leveled logger. Loggers created from the same root via
// Component share the root's output and level.
type Logger struct {
	mu     *sync.Mutex
	level  *Level
	output *io.Writer
	prefix string
}

// New creates a new logger writing to stderr.
func New(level Level) *Logger {
	out := io.Writer(os.Stderr)
	return &Logger{
		mu:     &sync.Mutex{},
		level:  &level,
		output: &out,
	}
}

// Component returns a logger that prefixes every message with the component
// name, sharing output and level with the parent.
func (l *Logger) Component(name string) *Logger {
	return &Logger{
		mu:     l.mu,
		level:  l.level,
		output: l.output,
		prefix: name + ": ",
	}
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.output = w
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.level = level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < *l.level {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("%s [%s] %s%s\n", timestamp, level.String(), l.prefix, msg)

	_, _ = (*l.output).Write([]byte(line))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	level := LevelError + 1 // higher than any level
	out := io.Discard
	return &Logger{
		mu:     &sync.Mutex{},
		level:  &level,
		output: &out,
	}
}
