// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports JSON or text output, level filtering and rotating log files

package structured

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is a logrus level name (debug, info, warn, error)
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, sends output to a rotating log file
	File string

	// Output overrides the destination when File is empty. Defaults to stdout.
	Output io.Writer
}

// StructuredLogger implements the Logger interface using logrus
type StructuredLogger struct {
	logger *logrus.Logger
	closer io.Closer
}

// NewStructuredLogger creates a logger from opts
func NewStructuredLogger(opts Options) (*StructuredLogger, error) {
	logger := logrus.New()

	level := opts.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(parsed)

	switch opts.Format {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	l := &StructuredLogger{logger: logger}

	switch {
	case opts.File != "":
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		logger.SetOutput(rotator)
		l.closer = rotator
	case opts.Output != nil:
		logger.SetOutput(opts.Output)
	default:
		logger.SetOutput(os.Stdout)
	}

	return l, nil
}

// Debug logs a debug message
func (l *StructuredLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StructuredLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StructuredLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StructuredLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the log file, if any
func (l *StructuredLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
