package main

// Seed the portfolio tables:
//   go run ./cmd/seed --file portfolio.yaml
//   go run ./cmd/seed --file portfolio.yaml --dry-run

import (
	"os"

	"portfolio-backend/internal/seed"
	"portfolio-backend/internal/shared/telemetry"
)

func main() {
	if err := seed.NewCommand(nil).Execute(); err != nil {
		telemetry.Error("seed.failed", map[string]any{"error": err})
		os.Exit(1)
	}
}
