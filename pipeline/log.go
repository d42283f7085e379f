package pipeline

import (
	"log"
	"sync/atomic"
)

type logFunc func(format string, v ...any)

var logger atomic.Pointer[logFunc]

func init() {
	SetLogger(log.Printf)
}

// Logf writes a diagnostic line through the current package logger, which
// defaults to log.Printf. It is safe to call from ReduceAll workers while
// SetLogger runs.
func Logf(format string, v ...any) {
	(*logger.Load())(format, v...)
}

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		f = func(string, ...any) {}
	}
	lf := logFunc(f)
	logger.Store(&lf)
}
