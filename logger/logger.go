// Package logger is the central log for chyp8. Entries are tagged with the
// component that produced them and filtered by level.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/retroenv/retrogolib/log"
)

// Level orders log entries by importance.
type Level int

const (
	Debug Level = iota
	Info
	Error
	Off
)

var levelNames = map[string]Level{
	"debug": Debug,
	"info":  Info,
	"error": Error,
	"off":   Off,
}

// ParseLevel converts a level name, as used in config files and CHYP8_LOG_LEVEL.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Info, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

var (
	mu      sync.RWMutex
	level             = Info
	output  io.Writer = os.Stderr
	central           = newLogger(level, output)
)

func newLogger(l Level, w io.Writer) *log.Logger {
	cfg := log.Config{Output: w}
	switch l {
	case Debug:
		cfg.Level = log.DebugLevel
	case Info:
		cfg.Level = log.InfoLevel
	case Error:
		cfg.Level = log.ErrorLevel
	case Off:
		cfg.Level = log.ErrorLevel
		cfg.Output = io.Discard
	}
	return log.NewWithConfig(cfg)
}

// SetLevel drops entries below l.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	central = newLogger(level, output)
}

// SetOutput redirects the log. Defaults to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	central = newLogger(level, output)
}

// tagged returns the child logger for a component.
func tagged(tag string) *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return central.Named(tag)
}

// one entry per line
func detail(format string, args []interface{}) string {
	return strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", " ")
}

func Logf(tag, format string, args ...interface{}) {
	tagged(tag).Info(detail(format, args))
}

func Debugf(tag, format string, args ...interface{}) {
	tagged(tag).Debug(detail(format, args))
}

func Errorf(tag, format string, args ...interface{}) {
	tagged(tag).Error(detail(format, args), nil)
}
