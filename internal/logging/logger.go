package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin structured logger for allocator components.
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger writing JSON to stdout at the given level.
// Unknown level strings fall back to info.
func New(level string) *Logger {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput creates a logger writing to the given destination.
func NewWithOutput(level string, out io.Writer) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(out).With().Timestamp().Logger().Level(lvl)
	return &Logger{logger: logger}
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent derives a logger carrying a component field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{logger: l.logger.With().Str("component", component).Logger()}
}

func (l *Logger) Debug(msg string, fields map[string]any) {
	event := l.logger.Debug()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]any) {
	event := l.logger.Info()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func (l *Logger) Warn(msg string, fields map[string]any) {
	event := l.logger.Warn()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	event := l.logger.Error()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

// Fatal logs the message and terminates the process.
func (l *Logger) Fatal(msg string, fields map[string]any) {
	event := l.logger.Fatal()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}
