// Package logging configures zerolog output for the CLI: a console writer
// for the operator plus a rotating log file that travels with the backup
// source tree.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the file sink.
const (
	maxSizeMB  = 8
	maxBackups = 10
)

// Setup builds the process logger: pretty console output on stderr and a
// size-rotated log file at logPath. It also installs the logger as the
// zerolog global so collaborators outside the engine share it; the engine
// itself receives the returned logger explicitly.
func Setup(level string, logPath string, noColor bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}

	writers := []io.Writer{console}
	if logPath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
		})
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// ParseLevel maps a config loglevel string onto a zerolog level. Unknown
// or empty strings fall back to info; config validation rejects unknown
// levels before this is reached.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
