// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps controls timestamp output. nil means on.
	Timestamps *bool
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	SetupLoggingTo(os.Stderr, cfg)
}

// SetupLoggingTo configures the global logger to write to w.
func SetupLoggingTo(w io.Writer, cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// ProjectLogger returns a child logger prefixed with the project name.
func ProjectLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("p:") + StyleNoun.Render(name))
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}
