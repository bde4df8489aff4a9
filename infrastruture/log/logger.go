// Package logger provides prefixed, leveled loggers backed by zerolog.
package logger

import (
	"errors"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/rs/zerolog"
)

// Logger writes leveled messages tagged with a colored component prefix.
type Logger struct {
	zlog zerolog.Logger
}

var level = zerolog.InfoLevel

// SetLevel sets the minimum level for loggers created afterwards.
// Unknown names fall back to info.
func SetLevel(name string) {
	switch strings.ToLower(name) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}
}

// New creates a logger that prefixes every line with [prefix] in the given color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, errors.New("logger: nil writer")
	}
	if prefix == "" {
		return nil, errors.New("logger: empty prefix")
	}

	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		FormatMessage: func(i interface{}) string {
			msg, _ := i.(string)
			return color + "[" + prefix + "]" + config.ColorReset + " " + msg
		},
	}

	return &Logger{
		zlog: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.zlog.Info().Msg(msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.zlog.Warn().Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.zlog.Error().Msg(msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.zlog.Debug().Msg(msg)
}
