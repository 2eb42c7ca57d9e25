// Package obs holds the logging and metrics hooks the server emits
// through. Both interfaces default to no-ops so the serving path
// carries no observability cost unless a caller plugs something in.
package obs

import (
	"log"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal logging interface the server writes to.
// Implementations must be safe for concurrent use; every connection
// goroutine may log.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// StdLogger adapts the standard library logger, filtering below Min.
type StdLogger struct {
	L      *log.Logger
	Min    Level
	Prefix string // optional prefix per log line
}

func (s StdLogger) Logf(level Level, format string, args ...interface{}) {
	if s.L == nil {
		return
	}
	if level < s.Min {
		return
	}
	if s.Prefix != "" {
		s.L.Printf("%s[%s] "+format, append([]interface{}{s.Prefix, level.String()}, args...)...)
	} else {
		s.L.Printf("[%s] "+format, append([]interface{}{level.String()}, args...)...)
	}
}
