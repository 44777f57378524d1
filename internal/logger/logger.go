package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level is the severity of a log line.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var prefixes = map[Level]string{
	Debug: "DEBUG",
	Info:  "INFO ",
	Warn:  "WARN ",
	Error: "ERROR",
}

// Logger writes leveled, timestamped lines to stdout.
type Logger struct {
	level Level
	out   *log.Logger
}

// New parses a level name ("debug", "info", "warn", "error"). Unknown names
// fall back to info.
func New(level string) *Logger {
	l := Info
	switch strings.ToLower(level) {
	case "debug":
		l = Debug
	case "warn":
		l = Warn
	case "error":
		l = Error
	}
	return &Logger{level: l, out: log.New(os.Stdout, "", log.LstdFlags)}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", prefixes[level], fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(Warn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(Error, format, args...) }
