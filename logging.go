package trackconv

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tracktools/trackconv/convert"
)

// InitLogging configures the shared console logger and wires it into the
// conversion engine. Returns the configured logger for callers that want to
// log through it themselves.
func InitLogging(level zerolog.Level) zerolog.Logger {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
	convert.SetLogger(l)
	return l
}
