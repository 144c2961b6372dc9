package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"ikraph-email-agent/pkg/log"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := log.WithTraceID(context.Background(), "abc-123")
	if got := log.TraceIDFromContext(ctx); got != "abc-123" {
		t.Errorf("expected abc-123, got %q", got)
	}

	if got := log.TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	t.Run("console debug", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Infof(log.WithTraceID(context.Background(), "t1"), "hello %s", "world")
	})

	t.Run("json production with bad level", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "loud", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Warn(context.Background(), "falls back to info level")
	})
}

func TestInitOutput(t *testing.T) {
	var buf bytes.Buffer
	l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON, Output: &buf})

	l.Debug(context.Background(), "dropped")
	l.Infof(log.WithTraceID(context.Background(), "req-1"), "routed %s", "prompt")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "routed prompt" || entry["trace_id"] != "req-1" || entry["level"] != "INFO" {
		t.Errorf("unexpected entry %v", entry)
	}
}
