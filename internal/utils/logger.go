package utils

import (
	"io"
	"log"
	"os"
	"sync"
)

// Logger provides the centralized logging mechanism for termchart. Charts go
// to stdout; diagnostics always go to stderr so they never corrupt piped
// chart output.
type Logger struct {
	warningLogger *log.Logger
	debugLogger   *log.Logger
	errorLogger   *log.Logger
	verbose       bool
	mu            sync.Mutex
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the default logger instance (singleton pattern)
func GetLogger() *Logger {
	once.Do(func() {
		defaultLogger = NewLogger(os.Stderr)
	})
	return defaultLogger
}

// NewLogger creates a new logger that writes to the given sink
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		warningLogger: log.New(w, "[WARN] ", log.LstdFlags),
		debugLogger:   log.New(w, "[DEBUG] ", log.LstdFlags),
		errorLogger:   log.New(w, "[ERROR] ", log.LstdFlags),
	}
}

// SetVerbose enables or disables debug output.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningLogger.Printf(format, args...)
}

// Debug logs a debug message; dropped unless verbose mode is on
func (l *Logger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.verbose {
		return
	}
	l.debugLogger.Printf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLogger.Printf(format, args...)
}

// Convenience functions for the default logger
func Warning(format string, args ...interface{}) {
	GetLogger().Warning(format, args...)
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}

// SetVerbose toggles debug output on the default logger.
func SetVerbose(verbose bool) {
	GetLogger().SetVerbose(verbose)
}
