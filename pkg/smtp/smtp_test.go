package smtp

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		cfg := Config{Username: "bot@example.com", Password: "app-pass"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Host != DefaultHost || cfg.Port != DefaultPort || cfg.Timeout != DefaultTimeout {
			t.Errorf("unexpected defaults %+v", cfg)
		}
	})

	t.Run("requires credentials", func(t *testing.T) {
		cfg := Config{Username: "bot@example.com"}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error without password")
		}
	})
}

func TestBuildMsg(t *testing.T) {
	m, err := BuildMsg(Message{
		From:    "bot@example.com",
		To:      "sam@gmail.com",
		Subject: "What is aspirin information",
		Body:    "Dear Sam,\n\nAspirin is an NSAID.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw := buf.String()
	for _, want := range []string{"Subject: What is aspirin information", "<sam@gmail.com>", "<bot@example.com>", "text/plain", "Aspirin is an NSAID."} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q:\n%s", want, raw)
		}
	}

	if _, err := BuildMsg(Message{From: "bot@example.com", To: "not an address"}); err == nil {
		t.Error("expected error for invalid recipient")
	}
}

func TestSend_Unreachable(t *testing.T) {
	client, err := New(Config{Host: "127.0.0.1", Port: 1, Username: "bot@example.com", Password: "x", Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Send(context.Background(), Message{From: "bot@example.com", To: "sam@gmail.com", Subject: "s", Body: "b"})
	if err == nil {
		t.Fatal("expected dial error")
	}
}
