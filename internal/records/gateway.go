package records

import "context"

// Gateway persists records of any kind described by a Schema. Every method runs a single
// statement; Update and Delete report success even when no row matched the id.
type Gateway interface {
	List(ctx context.Context, schema Schema) ([]Record, error)
	Get(ctx context.Context, schema Schema, id int64) (Record, error)
	Create(ctx context.Context, schema Schema, fields Fields) (int64, error)
	Update(ctx context.Context, schema Schema, id int64, fields Fields) error
	Delete(ctx context.Context, schema Schema, id int64) error
	Ping(ctx context.Context) error
}
