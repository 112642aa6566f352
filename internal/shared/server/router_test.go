package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/records"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
)

func newTestApp(t *testing.T, burst int) *gin.Engine {
	t.Helper()
	svc := records.NewService(records.NewMemoryGateway())
	r, err := NewRouter(RouterDeps{
		Config:        config.Config{ContactRate: 0.001, ContactBurst: burst},
		RecordHandler: records.NewHandler(svc),
		Health:        health.NewService(svc, "memory"),
	})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return r
}

func TestRouterHealth(t *testing.T) {
	r := newTestApp(t, 5)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["backend"] != "memory" || body["database"] != "up" {
		t.Fatalf("unexpected health body %v", body)
	}
}

func TestRouterNavigationListsEveryKind(t *testing.T) {
	r := newTestApp(t, 5)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, s := range records.Editable() {
		if !strings.Contains(rec.Body.String(), `href="`+s.ListPath+`"`) {
			t.Fatalf("expected nav link to %s:\n%s", s.ListPath, rec.Body.String())
		}
	}
}

func TestRouterUnknownPathRendersNotFound(t *testing.T) {
	r := newTestApp(t, 5)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found.") {
		t.Fatalf("expected error view:\n%s", rec.Body.String())
	}
}

func TestRouterMetricsCountOperations(t *testing.T) {
	r := newTestApp(t, 5)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/skills", nil))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `op="list"`) {
		t.Fatalf("expected list operation in metrics:\n%s", rec.Body.String())
	}
}

func TestRouterLimitsContactSubmissions(t *testing.T) {
	r := newTestApp(t, 1)
	post := func() *httptest.ResponseRecorder {
		form := url.Values{"name": {"Bo"}, "message": {"hi"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	if rec := post(); rec.Code != http.StatusFound {
		t.Fatalf("expected first submission to redirect, got %d", rec.Code)
	}
	rec := post()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
