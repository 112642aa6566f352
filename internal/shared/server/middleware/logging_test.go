package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	router := newTestRouter(t)
	router.Use(RequestID(), Logging())
	router.GET("/edit-skill/:id", func(c *gin.Context) {
		c.Set("recordKind", "skill")
		c.Set("recordId", int64(4))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/edit-skill/4", nil)
	req.Header.Set("X-Request-Id", "req-123")
	router.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "method", "path", "route", "status", "duration_ms", "record_kind", "record_id"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("expected %s in log payload: %v", key, payload)
		}
	}
	if payload["request_id"] != "req-123" {
		t.Fatalf("expected propagated request id, got %v", payload["request_id"])
	}
	if payload["route"] != "/edit-skill/:id" {
		t.Fatalf("expected route template, got %v", payload["route"])
	}
	if payload["record_kind"] != "skill" {
		t.Fatalf("expected record_kind skill, got %v", payload["record_kind"])
	}
}
