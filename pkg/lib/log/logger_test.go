package log

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []LogFormat{LogFormatJSON, LogFormatConsole} {
		logger, err := NewLogger(&Config{Level: LogLevelInfo, Format: format})
		if err != nil {
			t.Fatalf("expected logger construction to succeed for %q: %v", format, err)
		}
		if got := logger.GetLevel(); got != zerolog.InfoLevel {
			t.Errorf("expected info level for %q, got %s", format, got)
		}
	}
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	if _, err := NewLogger(&Config{Level: "verbose", Format: LogFormatJSON}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
