package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"", slog.LevelInfo, true},
		{"DEBUG", slog.LevelDebug, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLevel(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_WritesToAllWriters(t *testing.T) {
	var a, b bytes.Buffer
	logger := New(slog.LevelInfo, &a, &b)
	logger.Debug("hidden")
	logger.Info("converted file", "path", "Login.rxrec")

	for name, buf := range map[string]*bytes.Buffer{"a": &a, "b": &b} {
		out := buf.String()
		if !strings.Contains(out, "converted file") || !strings.Contains(out, "path=Login.rxrec") {
			t.Errorf("writer %s missing record: %q", name, out)
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("writer %s should not get debug records at info level", name)
		}
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must not be enabled for errors.
	logger := Discard()
	logger.Error("nothing")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not be enabled")
	}
}

func TestOpenFile_WritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "conversion_log.txt")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Conversion started at: ") {
		t.Errorf("unexpected header: %q", data)
	}
}
