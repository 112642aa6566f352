package seed

import (
	"context"
	"fmt"

	"portfolio-backend/internal/records"
	"portfolio-backend/internal/shared/telemetry"
)

// Apply creates every entry through svc and returns how many were written. It stops at
// the first failure.
func Apply(ctx context.Context, svc *records.Service, plan Plan) (int, error) {
	written := 0
	for _, e := range plan.Entries {
		id, err := svc.Create(ctx, e.Schema, e.Fields)
		if err != nil {
			return written, fmt.Errorf("seed %s: %w", e.Schema.Table, err)
		}
		written++
		telemetry.Info("seed.created", map[string]any{"table": e.Schema.Table, "id": id})
	}
	return written, nil
}
