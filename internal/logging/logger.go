// Package logging holds the process wide logger of raeval.
package logging

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// Logger is the process wide logger.  It discards everything until
// SetGlobalLogger installs another one.
var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces the global logger and makes it the logger that
// zerolog.Ctx falls back to for contexts without one.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

// New returns a console logger at the named level, which is one of the
// zerolog level names.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(lvl).With().Timestamp().Logger(), nil
}

// Ctx returns the logger of ctx, or Logger if ctx has none.
func Ctx(ctx context.Context) *zerolog.Logger { return zerolog.Ctx(ctx) }
