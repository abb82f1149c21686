// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// SetDefaultLogger provides a readable log format before config is loaded.
func SetDefaultLogger() {
	log.Logger = log.Output(ConsoleWriter(os.Stderr))
}

// Setup sets the global level and output format.
func Setup(level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	switch strings.ToLower(format) {
	case "", FormatConsole:
		log.Logger = log.Output(ConsoleWriter(os.Stderr))
	case FormatJSON:
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		return fmt.Errorf("invalid log format %q (allowed: console, json)", format)
	}

	return nil
}

// ParseLevel maps a config level name to a zerolog level. An empty name
// means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", level)
	}
}

// ConsoleWriter returns a console writer for f with colour disabled when f
// is not a terminal.
func ConsoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    !isatty.IsTerminal(f.Fd()),
		TimeFormat: time.DateTime,
	}
}
