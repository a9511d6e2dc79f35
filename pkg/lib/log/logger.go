package log

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var levels = map[LogLevel]zerolog.Level{
	LogLevelTrace: zerolog.TraceLevel,
	LogLevelDebug: zerolog.DebugLevel,
	LogLevelInfo:  zerolog.InfoLevel,
	LogLevelWarn:  zerolog.WarnLevel,
	LogLevelError: zerolog.ErrorLevel,
	LogLevelFatal: zerolog.FatalLevel,
}

// NewLogger builds the process-wide logger from cfg. The console format is
// meant for local development; JSON is the default everywhere else.
func NewLogger(cfg *Config) (*zerolog.Logger, error) {
	level, ok := levels[cfg.Level]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	var l zerolog.Logger
	switch cfg.Format {
	case LogFormatConsole:
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	default:
		l = zerolog.New(os.Stdout)
	}

	l = l.Level(level).With().Timestamp().Logger()
	return &l, nil
}
