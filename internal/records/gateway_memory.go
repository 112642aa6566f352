package records

import (
	"context"
	"sync"
)

// MemoryGateway is an in-memory implementation of Gateway. Records are kept in insertion
// order and ids are never reused within a table.
type MemoryGateway struct {
	mu     sync.RWMutex
	tables map[string]*memoryTable
}

type memoryTable struct {
	nextID int64
	rows   []Record
}

// NewMemoryGateway constructs a MemoryGateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{tables: make(map[string]*memoryTable)}
}

func (g *MemoryGateway) List(ctx context.Context, schema Schema) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(OpList, schema.Kind, err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	t := g.tables[schema.Table]
	if t == nil {
		return nil, nil
	}
	out := make([]Record, 0, len(t.rows))
	for _, rec := range t.rows {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

func (g *MemoryGateway) Get(ctx context.Context, schema Schema, id int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, unavailable(OpGet, schema.Kind, err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	t := g.tables[schema.Table]
	if t == nil {
		return Record{}, ErrNotFound
	}
	if i := t.index(id); i >= 0 {
		return cloneRecord(t.rows[i]), nil
	}
	return Record{}, ErrNotFound
}

func (g *MemoryGateway) Create(ctx context.Context, schema Schema, fields Fields) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, unavailable(OpCreate, schema.Kind, err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	t := g.tables[schema.Table]
	if t == nil {
		t = &memoryTable{}
		g.tables[schema.Table] = t
	}
	t.nextID++
	t.rows = append(t.rows, Record{ID: t.nextID, Fields: schema.Normalize(fields)})
	return t.nextID, nil
}

func (g *MemoryGateway) Update(ctx context.Context, schema Schema, id int64, fields Fields) error {
	if err := ctx.Err(); err != nil {
		return unavailable(OpUpdate, schema.Kind, err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	t := g.tables[schema.Table]
	if t == nil {
		return nil
	}
	if i := t.index(id); i >= 0 {
		t.rows[i].Fields = schema.Normalize(fields)
	}
	return nil
}

func (g *MemoryGateway) Delete(ctx context.Context, schema Schema, id int64) error {
	if err := ctx.Err(); err != nil {
		return unavailable(OpDelete, schema.Kind, err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	t := g.tables[schema.Table]
	if t == nil {
		return nil
	}
	if i := t.index(id); i >= 0 {
		t.rows = append(t.rows[:i], t.rows[i+1:]...)
	}
	return nil
}

func (g *MemoryGateway) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (t *memoryTable) index(id int64) int {
	for i := range t.rows {
		if t.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneRecord(rec Record) Record {
	fields := make(Fields, len(rec.Fields))
	for k, v := range rec.Fields {
		fields[k] = v
	}
	return Record{ID: rec.ID, Fields: fields}
}

var _ Gateway = (*MemoryGateway)(nil)
