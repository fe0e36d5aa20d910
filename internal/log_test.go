package internal

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"ERROR":   LogLevelError,
		"warn":    LogLevelWarn,
		"":        LogLevelInfo,
		"bogus":   LogLevelInfo,
		" DEBUG ": LogLevelDebug,
		"TRACE":   LogLevelTrace,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLoggerFiltersAndTags(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelInfo).With("Generator")

	logger.Debug("hidden %d", 1)
	logger.Info("job %s done", "0:PlayerConfig")
	logger.Error("job %s failed", "1:ItemConfig")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug line to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[INFO] [Generator] job 0:PlayerConfig done") {
		t.Errorf("Missing info line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] [Generator] job 1:ItemConfig failed") {
		t.Errorf("Missing error line in %q", out)
	}
}
