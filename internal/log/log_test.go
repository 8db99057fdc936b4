package log

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogHTTPRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))

	LogHTTPRequest("abc", "GET", "/trig/sine/30", 200, 3*time.Millisecond, 42, "127.0.0.1:1234", "test")
	LogHTTPRequest("def", "GET", "/boom", 500, time.Millisecond, 0, "127.0.0.1:1234", "test")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, expected 2", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("first entry level = %v, expected info", entries[0].Level)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "abc" {
		t.Errorf("request_id = %v, expected abc", got)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("second entry level = %v, expected error", entries[1].Level)
	}
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Replace(zap.New(core))

	Named("restserver").Infof("listening on %s", ":8080")

	entries := logs.FilterLoggerName("restserver").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries for restserver, expected 1", len(entries))
	}
	if entries[0].Message != "listening on :8080" {
		t.Errorf("message = %q", entries[0].Message)
	}
}
