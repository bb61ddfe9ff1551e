// Package logging defines the small logging interface shared by the engine,
// the storage layer and the scheduler.
package logging

import "log"

// Logger is a minimal logging interface.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger implements Logger on top of the standard log package.
// Debug lines are only written when Verbose is set.
type StdLogger struct {
	Verbose bool
}

func (l StdLogger) Debugf(format string, args ...any) {
	if l.Verbose {
		log.Printf("DEBUG: "+format, args...)
	}
}
func (StdLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (StdLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (StdLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

// OrNop returns l, or a NopLogger when l is nil
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
