package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func captureLogger() (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New().SetOutput(buf), buf
}

func TestLoggerWritesJSONLine(t *testing.T) {
	logger, buf := captureLogger()

	logger.Info("server started", map[string]interface{}{"port": 8080})

	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Fatal("expected trailing newline")
	}

	var e entry
	if err := json.Unmarshal([]byte(line), &e); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if e.Level != "INFO" {
		t.Errorf("level = %q, want INFO", e.Level)
	}
	if e.Message != "server started" {
		t.Errorf("message = %q", e.Message)
	}
	if e.Fields["port"] != float64(8080) {
		t.Errorf("port field = %v", e.Fields["port"])
	}
	if e.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	logger, buf := captureLogger()
	logger.SetLevel(LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	lines := strings.Count(buf.String(), "\n")
	if lines != 2 {
		t.Fatalf("expected 2 lines at warn level, got %d: %s", lines, buf.String())
	}
}

func TestLoggerWithFields(t *testing.T) {
	logger, buf := captureLogger()

	derived := logger.WithFields(map[string]interface{}{"request_id": "abc"})
	derived.Info("handling", map[string]interface{}{"path": "/api/cycles"})

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if e.Fields["request_id"] != "abc" {
		t.Errorf("request_id = %v", e.Fields["request_id"])
	}
	if e.Fields["path"] != "/api/cycles" {
		t.Errorf("path = %v", e.Fields["path"])
	}

	// Derived fields must not leak back to the parent.
	buf.Reset()
	logger.Info("plain")
	var plain entry
	if err := json.Unmarshal(buf.Bytes(), &plain); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := plain.Fields["request_id"]; ok {
		t.Error("parent logger picked up derived field")
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
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
