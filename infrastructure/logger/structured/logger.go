// ABOUTME: Structured logger backed by logrus with optional rotating file output
// ABOUTME: Implements interfaces.Logger so core packages never import logrus directly

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"news-summarizer-api/core/interfaces"
)

// Options configures the logger
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	// File enables rotation into this path in addition to stdout
	File string
}

// Logger implements interfaces.Logger on top of a logrus entry
type Logger struct {
	entry *logrus.Entry
}

var _ interfaces.Logger = (*Logger)(nil)

// NewLogger builds a logger from options
func NewLogger(opts Options) *Logger {
	base := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	if strings.EqualFold(opts.Format, "text") {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	base.SetOutput(out)

	return &Logger{entry: logrus.NewEntry(base)}
}

// NewWithWriter logs JSON into w, used by tests to capture output
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(level)
	base.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{entry: logrus.NewEntry(base)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// With returns a child logger carrying fields on every entry
func (l *Logger) With(fields map[string]interface{}) interfaces.Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}
