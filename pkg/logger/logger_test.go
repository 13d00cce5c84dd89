package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}
	logger.Info(context.Background(), "test message", String("k", "v"), Int("n", 1), Bool("ok", true))
}

func TestLoggerNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	namedLogger := Named("test")
	if namedLogger == nil {
		t.Fatal("named logger is nil")
	}
	namedLogger.Info(context.Background(), "test message")
}

func TestSetLevelString(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warning", "error", ""} {
		if err := SetLevelString(lvl); err != nil {
			t.Errorf("SetLevelString(%q) failed: %v", lvl, err)
		}
	}
	if err := SetLevelString("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	_ = SetLevelString("info")
}

func TestFanout(t *testing.T) {
	var console, file bytes.Buffer
	levelVar.Set(0)
	l := &slogLogger{sl: newFanout(&console, &file)}

	l.Info(context.Background(), "recommendation", String("lane", "jungle"))
	l.Debug(context.Background(), "hidden")

	if !strings.Contains(console.String(), "lane=jungle") {
		t.Errorf("console output missing field: %q", console.String())
	}
	if strings.Contains(console.String(), "hidden") {
		t.Error("debug record written at info level")
	}

	var rec map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(file.Bytes()), &rec); err != nil {
		t.Fatalf("file output is not one JSON record: %v", err)
	}
	if rec["msg"] != "recommendation" || rec["lane"] != "jungle" {
		t.Errorf("unexpected JSON record: %v", rec)
	}
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "draft.log")
	closeFn, err := InitWithFile(path)
	if err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}

	Get().Warn(context.Background(), "catalog record rejected", String("hero", "Nobody"))
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"hero":"Nobody"`) {
		t.Errorf("log file missing record: %s", data)
	}
	_ = Init()
}

func TestParseLevel(t *testing.T) {
	if _, err := ParseLevel("loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
	l, err := ParseLevel(" Warning ")
	if err != nil || l != slog.LevelWarn {
		t.Errorf("ParseLevel(Warning) = %v, %v", l, err)
	}
}

func TestWith(t *testing.T) {
	var console, file bytes.Buffer
	levelVar.Set(slog.LevelInfo)
	var l Logger = &slogLogger{sl: newFanout(&console, &file)}

	l.With(String("session", "abc")).Named("engine").Info(context.Background(), "scored",
		Strings("top", []string{"Khufra"}), Duration("took", 0))

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(file.Bytes()), &rec); err != nil {
		t.Fatalf("file output is not one JSON record: %v", err)
	}
	if rec["session"] != "abc" {
		t.Errorf("With field missing: %v", rec)
	}
	group, ok := rec["engine"].(map[string]any)
	if !ok || group["source"] == nil || !strings.HasPrefix(group["source"].(string), "logger_test.go:") {
		t.Errorf("grouped source missing or wrong: %v", rec)
	}
}
