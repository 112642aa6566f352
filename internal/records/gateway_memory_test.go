package records

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryGatewayAssignsIncreasingIDs(t *testing.T) {
	gw := NewMemoryGateway()
	ctx := context.Background()

	first, err := gw.Create(ctx, Skill, Fields{"skill_name": "Go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := gw.Delete(ctx, Skill, first); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	second, err := gw.Create(ctx, Skill, Fields{"skill_name": "Rust"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second <= first {
		t.Fatalf("expected ids not to be reused, got %d then %d", first, second)
	}
}

func TestMemoryGatewayTablesAreIndependent(t *testing.T) {
	gw := NewMemoryGateway()
	ctx := context.Background()
	if _, err := gw.Create(ctx, Skill, Fields{"skill_name": "Go"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	recs, err := gw.List(ctx, Project)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no projects, got %d", len(recs))
	}
}

func TestMemoryGatewayReturnsCopies(t *testing.T) {
	gw := NewMemoryGateway()
	ctx := context.Background()
	id, _ := gw.Create(ctx, Skill, Fields{"skill_name": "Go"})

	rec, err := gw.Get(ctx, Skill, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	rec.Fields["skill_name"] = "mutated"

	again, _ := gw.Get(ctx, Skill, id)
	if again.Value("skill_name") != "Go" {
		t.Fatalf("stored record was mutated through a returned copy")
	}
}

func TestMemoryGatewayMissingIDs(t *testing.T) {
	gw := NewMemoryGateway()
	ctx := context.Background()

	if _, err := gw.Get(ctx, Education, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := gw.Update(ctx, Education, 999, Fields{"school": "x"}); err != nil {
		t.Fatalf("Update on missing id: %v", err)
	}
	if err := gw.Delete(ctx, Education, 999); err != nil {
		t.Fatalf("Delete on missing id: %v", err)
	}
	recs, _ := gw.List(ctx, Education)
	if len(recs) != 0 {
		t.Fatalf("expected update on a missing id not to create a record")
	}
}

func TestMemoryGatewayCancelledContextIsUnavailable(t *testing.T) {
	gw := NewMemoryGateway()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gw.List(ctx, Skill); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
