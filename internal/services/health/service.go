package health

import (
	"context"
	"time"
)

// Pinger is anything that can verify its backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	Store   Pinger
	Backend string
	Timeout time.Duration
}

// NewService constructs a new health service. backend names the store ("postgres" or
// "memory").
func NewService(store Pinger, backend string) *Service {
	return &Service{Store: store, Backend: backend, Timeout: 2 * time.Second}
}

// Status returns the health payload and whether the store answered.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	out := map[string]any{"ok": true, "backend": s.Backend, "database": "up"}
	if s.Store == nil {
		out["database"] = "none"
		return out, true
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.Store.Ping(pingCtx); err != nil {
		out["ok"] = false
		out["database"] = "down"
		return out, false
	}
	return out, true
}
