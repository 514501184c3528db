// ABOUTME: Standard logger implementation backed by logrus
// ABOUTME: Provides structured logging with level support and optional file rotation

package standard

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls how log entries are rendered and where they go
type Options struct {
	// Level is one of debug, info, warn, error (default info)
	Level string

	// Format is "text" or "json" (default text)
	Format string

	// File, when set, receives the output through a rotating writer
	File string

	// Output overrides the destination; used by tests
	Output io.Writer
}

// StandardLogger implements the Logger interface on top of logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates a text logger at info level writing to stdout
func NewStandardLogger() *StandardLogger {
	return NewLogger(Options{})
}

// NewLogger creates a logger configured by opts. Unknown levels fall back
// to info.
func NewLogger(opts Options) *StandardLogger {
	log := logrus.New()

	switch {
	case opts.Output != nil:
		log.SetOutput(opts.Output)
	case opts.File != "":
		log.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	default:
		log.SetOutput(os.Stdout)
	}

	if strings.EqualFold(opts.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &StandardLogger{log: log}
}

// NewQuietLogger creates a logger that discards everything
func NewQuietLogger() *StandardLogger {
	return NewLogger(Options{Output: io.Discard, Level: "error"})
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

// Writer returns a pipe that logs each written line at error level.
// The caller must close it.
func (l *StandardLogger) Writer() *io.PipeWriter {
	return l.log.WriterLevel(logrus.ErrorLevel)
}
