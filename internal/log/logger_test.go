package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"Error", LevelError},
		{"", LevelWarn},
		{"nonsense", LevelWarn},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func newFileLogger(t *testing.T, minLevel Level) (*Logger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "burrow.log")
	logger, err := New(path, minLevel)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })
	return logger, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestLoggerWritesFormattedLines(t *testing.T) {
	logger, path := newFileLogger(t, LevelDebug)

	logger.Info("visited %s", "gopher://example.com:70/")

	content := readLog(t, path)
	if !strings.Contains(content, "INFO: visited gopher://example.com:70/") {
		t.Errorf("log content missing expected line, got: %q", content)
	}
}

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	logger, path := newFileLogger(t, LevelWarn)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("shown")
	logger.Error("also shown")

	content := readLog(t, path)
	if strings.Contains(content, "hidden") {
		t.Errorf("log contains filtered messages: %q", content)
	}
	if !strings.Contains(content, "WARN: shown") || !strings.Contains(content, "ERROR: also shown") {
		t.Errorf("log missing expected messages: %q", content)
	}
}

func TestLoggerSetEnabled(t *testing.T) {
	logger, path := newFileLogger(t, LevelDebug)

	logger.SetEnabled(false)
	logger.Info("silenced")
	logger.SetEnabled(true)
	logger.Info("audible")

	content := readLog(t, path)
	if strings.Contains(content, "silenced") {
		t.Errorf("disabled logger still wrote: %q", content)
	}
	if !strings.Contains(content, "audible") {
		t.Errorf("re-enabled logger did not write: %q", content)
	}
}

func TestLoggerFilePermissions(t *testing.T) {
	_, path := newFileLogger(t, LevelDebug)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("log file permissions = %o, want 0600", perm)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger

	// None of these should panic.
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.SetEnabled(true)
	if err := logger.Close(); err != nil {
		t.Errorf("nil logger Close() = %v, want nil", err)
	}
}

func TestLoggerWriter(t *testing.T) {
	logger, path := newFileLogger(t, LevelDebug)

	w := logger.Writer(LevelInfo)
	if _, err := w.Write([]byte("piped message")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	content := readLog(t, path)
	if !strings.Contains(content, "INFO: piped message") {
		t.Errorf("writer output missing, got: %q", content)
	}
}

func TestNopLogger(t *testing.T) {
	var logger NopLogger

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	if err := logger.Close(); err != nil {
		t.Errorf("NopLogger.Close() = %v, want nil", err)
	}
}
