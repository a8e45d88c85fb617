package logging

import (
	"os"

	"github.com/phuslu/log"
)

// Init configures the package-level default logger. Console format is for
// interactive runs; JSON for daemon mode, where stderr may be collected.
func Init(level, format string) {
	l := log.Logger{
		Level:      ParseLevel(level),
		TimeFormat: "15:04:05",
	}
	if format == "json" {
		l.Writer = &log.IOWriter{Writer: os.Stderr}
	} else {
		l.Writer = &log.ConsoleWriter{
			ColorOutput:    log.IsTerminal(os.Stderr.Fd()),
			QuoteString:    true,
			EndWithMessage: true,
			Writer:         os.Stderr,
		}
	}
	log.DefaultLogger = l
}

// ParseLevel converts a level string to a log.Level.
// Unknown strings default to InfoLevel.
func ParseLevel(s string) log.Level {
	switch s {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
