package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	SessionIDKey string = "sessionID"
	VariantKey   string = "variant"
	PhaseKey     string = "phase"
	PlayerIDKey  string = "playerID"
	BackendKey   string = "backend"
)

// New returns a console logger tagged with name. Output is coloured when
// COLORIZE_LOG=1. An unparsable level falls back to info.
func New(name string, out io.Writer, level string) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    os.Getenv("COLORIZE_LOG") != "1",
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Str("logger", name).Logger()
}

// Nop discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
