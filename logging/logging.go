package logging

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Logger writes leveled diagnostics to a single stream. The rendered
// histogram owns standard output, so every level, info included, stays
// off it.
type Logger struct {
	enableInfo        bool
	enableTracing     bool
	mutraceSubsystems sync.Mutex
	traceSubsystems   map[string]bool
	infoLogger        *log.Logger
	warnLogger        *log.Logger
	errorLogger       *log.Logger
	debugLogger       *log.Logger
	traceLogger       *log.Logger
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{
		enableInfo:      false,
		enableTracing:   false,
		infoLogger:      log.NewWithOptions(w, log.Options{Prefix: "info"}),
		warnLogger:      log.NewWithOptions(w, log.Options{Prefix: "warn"}),
		errorLogger:     log.NewWithOptions(w, log.Options{}),
		debugLogger:     log.NewWithOptions(w, log.Options{Prefix: "debug"}),
		traceLogger:     log.NewWithOptions(w, log.Options{Prefix: "trace"}),
		traceSubsystems: make(map[string]bool),
	}
}

// Info is silent until EnableInfo has been called.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.enableInfo {
		l.infoLogger.Printf(format, args...)
	}
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.errorLogger.Printf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.debugLogger.Printf(format, args...)
}

// Trace is silent until EnableTrace has been called with a matching
// subsystem, or with "all".
func (l *Logger) Trace(subsystem string, format string, args ...interface{}) {
	if l.enableTracing {
		l.mutraceSubsystems.Lock()
		_, exists := l.traceSubsystems[subsystem]
		if !exists {
			_, exists = l.traceSubsystems["all"]
		}
		l.mutraceSubsystems.Unlock()
		if exists {
			l.traceLogger.Printf(subsystem+": "+format, args...)
		}
	}
}

func (l *Logger) EnableInfo() {
	l.enableInfo = true
}

func (l *Logger) EnableTrace(traces string) {
	l.enableTracing = true
	l.traceSubsystems = make(map[string]bool)
	for _, subsystem := range strings.Split(traces, ",") {
		l.traceSubsystems[subsystem] = true
	}
}
