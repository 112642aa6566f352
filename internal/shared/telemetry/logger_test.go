package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestErrorWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Error("record.query_failed", map[string]any{
		"kind":  "skill",
		"error": errors.New("relation \"skills\" does not exist"),
	})

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["level"] != "error" {
		t.Fatalf("expected level error, got %v", payload["level"])
	}
	if payload["msg"] != "record.query_failed" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["error"] != "relation \"skills\" does not exist" {
		t.Fatalf("expected error string, got %v", payload["error"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts field")
	}
}

func TestSetOutputWhileLoggingConcurrently(t *testing.T) {
	var first, second bytes.Buffer
	restore := SetOutput(&first)
	defer restore()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			Info("record.list", map[string]any{"i": i})
		}
	}()
	for i := 0; i < 20; i++ {
		SetOutput(&second)
		SetOutput(&first)
	}
	<-done
	Info("record.list", map[string]any{"i": "last"})

	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	line := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["msg"] != "record.list" {
		t.Fatalf("expected msg key to survive output swaps, got %v", payload)
	}
}
