package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging throughout the application.
// Different implementations can be used for different contexts (console, silent, structured, etc.)
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// Environments understood by New.
const (
	Development = "development"
	Production  = "production"
)

// Options configures a zerolog-backed logger.
type Options struct {
	// Environment selects human-readable console output (development) or JSON lines (production).
	Environment string
	// Level is a zerolog level name; unknown values fall back to info.
	Level string
	// Output defaults to stderr.
	Output io.Writer
}

// ZerologLogger adapts zerolog to the printf-style Logger interface.
type ZerologLogger struct {
	zl zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// New creates a logger from opts.
func New(opts Options) *ZerologLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var zl zerolog.Logger
	if strings.EqualFold(opts.Environment, Production) {
		zl = zerolog.New(out).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return &ZerologLogger{zl: zl.Level(level)}
}

// NewConsoleLogger writes human-readable logs to stderr.
// Used for normal operation and debugging.
func NewConsoleLogger(level string) *ZerologLogger {
	return New(Options{Environment: Development, Level: level})
}

func (l *ZerologLogger) Info(msg string, args ...interface{}) {
	emit(l.zl.Info(), msg, args)
}

func (l *ZerologLogger) Error(msg string, args ...interface{}) {
	emit(l.zl.Error(), msg, args)
}

func (l *ZerologLogger) Debug(msg string, args ...interface{}) {
	emit(l.zl.Debug(), msg, args)
}

func emit(e *zerolog.Event, msg string, args []interface{}) {
	if len(args) == 0 {
		e.Msg(msg)
		return
	}
	e.Msgf(msg, args...)
}

// SilentLogger discards all log messages.
// Used when running in TUI mode to prevent log output from interfering with the display.
type SilentLogger struct{}

func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

func (s *SilentLogger) Info(msg string, args ...interface{})  {}
func (s *SilentLogger) Error(msg string, args ...interface{}) {}
func (s *SilentLogger) Debug(msg string, args ...interface{}) {}
