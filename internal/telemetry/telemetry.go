// Package telemetry wraps the standard library's log.Logger behind a
// narrow interface so callers (the bulletin boards, which warn on
// rejected dealer and vote proofs) log without depending on log
// directly.
package telemetry

import (
	"io"
	"log"
	"os"
)

// Logger is the narrow logging surface used throughout this module.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

type stdLogger struct {
	warn  *log.Logger
	debug *log.Logger
	quiet bool
}

// New returns a Logger writing to w. If debug is false, Debugf calls
// are dropped.
func New(w io.Writer, debug bool) Logger {
	return &stdLogger{
		warn:  log.New(w, "WARN  ", log.LstdFlags),
		debug: log.New(w, "DEBUG ", log.LstdFlags),
		quiet: !debug,
	}
}

// Default returns a Logger writing warnings to stderr with debug
// output disabled.
func Default() Logger {
	return New(os.Stderr, false)
}

func (l *stdLogger) Warnf(format string, args ...any) {
	l.warn.Printf(format, args...)
}

func (l *stdLogger) Debugf(format string, args ...any) {
	if l.quiet {
		return
	}
	l.debug.Printf(format, args...)
}

// Nop is a Logger that discards everything, for tests that don't care
// about log output.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Debugf(string, ...any) {}
