package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the process-wide zerolog logger. Logs go to the given
// file if it can be opened, otherwise to stdout.
func Init(file, level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	out := os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("cannot open log file, using stdout")
		} else {
			out = f
		}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	log.Info().Str("level", lvl.String()).Msg("logger initialized")
}
