package clist

import (
	"os"

	"github.com/rs/zerolog"
)

// Reporter is the diagnostic sink for violated preconditions.
// Report is called exactly once per violation, right before the list panics with the same error.
// A Reporter may terminate the process instead of returning.
type Reporter interface {
	Report(err *PositionError)
}

// ReporterFunc is an adapter to use ordinary functions as Reporter
type ReporterFunc func(err *PositionError)

// Report calls f(err)
func (f ReporterFunc) Report(err *PositionError) { f(err) }

var defaultReporter Reporter = PanicReporter{}

// PanicReporter emits nothing, the panic value carries the diagnostic. Used by default.
type PanicReporter struct{}

// Report does nothing for panic reporter
func (PanicReporter) Report(*PositionError) {}

// LogReporter writes one error event per violation to its logger
type LogReporter struct {
	Logger zerolog.Logger
	Level  zerolog.Level
}

// NewLogReporter makes LogReporter writing to logger with error level
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{Logger: logger, Level: zerolog.ErrorLevel}
}

// Report logs err with operation and violated precondition as fields
func (r *LogReporter) Report(err *PositionError) {
	r.Logger.WithLevel(r.Level).Err(err).Str("op", err.Op).Str("requires", err.Requires).Msg("list position violated")
}

// ExitReporter logs the violation and terminates the process with Code
type ExitReporter struct {
	LogReporter
	Code int
	exit func(code int)
}

// NewExitReporter makes ExitReporter logging to logger and exiting with code
func NewExitReporter(logger zerolog.Logger, code int) *ExitReporter {
	return &ExitReporter{LogReporter: LogReporter{Logger: logger, Level: zerolog.FatalLevel}, Code: code, exit: os.Exit}
}

// Report logs err and exits, never returns with the default exit func
func (r *ExitReporter) Report(err *PositionError) {
	r.LogReporter.Report(err)
	exit := r.exit
	if exit == nil {
		exit = os.Exit
	}
	exit(r.Code)
}
