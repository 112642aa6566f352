package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"portfolio-backend/internal/shared/telemetry"
)

// PGGateway implements Gateway on Postgres. Each operation checks out its own
// connection from DB and returns it before the call completes.
type PGGateway struct {
	DB *sql.DB
}

// NewPGGateway constructs a PGGateway.
func NewPGGateway(db *sql.DB) *PGGateway {
	return &PGGateway{DB: db}
}

// List returns every row of the kind in the order Postgres yields them.
func (g *PGGateway) List(ctx context.Context, schema Schema) ([]Record, error) {
	var out []Record
	err := g.withConn(ctx, OpList, schema, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectQuery(schema))
		if err != nil {
			return err
		}
		defer rows.Close()

		var recs []Record
		for rows.Next() {
			rec, err := scanRecord(rows, schema)
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		out = recs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the row with id or ErrNotFound.
func (g *PGGateway) Get(ctx context.Context, schema Schema, id int64) (Record, error) {
	var rec Record
	err := g.withConn(ctx, OpGet, schema, func(conn *sql.Conn) error {
		query := selectQuery(schema) + " WHERE " + schema.IDColumn + " = $1"
		found, err := scanRecord(conn.QueryRowContext(ctx, query, id), schema)
		if err != nil {
			return err
		}
		rec = found
		return nil
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Create inserts a row and returns the id Postgres assigned to it.
func (g *PGGateway) Create(ctx context.Context, schema Schema, fields Fields) (int64, error) {
	var id int64
	err := g.withConn(ctx, OpCreate, schema, func(conn *sql.Conn) error {
		cols := schema.ColumnNames()
		placeholders := make([]string, len(cols))
		for i := range cols {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			schema.Table,
			strings.Join(cols, ", "),
			strings.Join(placeholders, ", "),
			schema.IDColumn,
		)
		return conn.QueryRowContext(ctx, query, columnArgs(schema, fields)...).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites every column of the row with id.
func (g *PGGateway) Update(ctx context.Context, schema Schema, id int64, fields Fields) error {
	return g.withConn(ctx, OpUpdate, schema, func(conn *sql.Conn) error {
		cols := schema.ColumnNames()
		assignments := make([]string, len(cols))
		for i, col := range cols {
			assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
		}
		query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
			schema.Table,
			strings.Join(assignments, ", "),
			schema.IDColumn,
			len(cols)+1,
		)
		args := append(columnArgs(schema, fields), id)
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		logNoRows(res, OpUpdate, schema, id)
		return nil
	})
}

// Delete removes the row with id.
func (g *PGGateway) Delete(ctx context.Context, schema Schema, id int64) error {
	return g.withConn(ctx, OpDelete, schema, func(conn *sql.Conn) error {
		query := "DELETE FROM " + schema.Table + " WHERE " + schema.IDColumn + " = $1"
		res, err := conn.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		logNoRows(res, OpDelete, schema, id)
		return nil
	})
}

// Ping verifies a connection can be acquired.
func (g *PGGateway) Ping(ctx context.Context) error {
	if g.DB == nil {
		return ErrStoreUnavailable
	}
	return g.DB.PingContext(ctx)
}

// withConn acquires a dedicated connection, runs fn and always releases it. Acquisition
// failures are ErrStoreUnavailable; anything fn returns other than ErrNotFound is ErrQuery.
func (g *PGGateway) withConn(ctx context.Context, op Op, schema Schema, fn func(conn *sql.Conn) error) error {
	if g.DB == nil {
		return unavailable(op, schema.Kind, errors.New("database not configured"))
	}
	conn, err := g.DB.Conn(ctx)
	if err != nil {
		return unavailable(op, schema.Kind, err)
	}
	defer conn.Close()

	if err := fn(conn); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return queryFailed(op, schema.Kind, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func selectQuery(schema Schema) string {
	return "SELECT " + schema.IDColumn + ", " + strings.Join(schema.ColumnNames(), ", ") + " FROM " + schema.Table
}

func scanRecord(row rowScanner, schema Schema) (Record, error) {
	var id int64
	values := make([]sql.NullString, len(schema.Columns))
	dest := make([]any, 0, len(values)+1)
	dest = append(dest, &id)
	for i := range values {
		dest = append(dest, &values[i])
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	fields := make(Fields, len(schema.Columns))
	for i, col := range schema.Columns {
		if values[i].Valid {
			fields[col.Name] = values[i].String
		} else {
			fields[col.Name] = ""
		}
	}
	return Record{ID: id, Fields: fields}, nil
}

func columnArgs(schema Schema, fields Fields) []any {
	args := make([]any, 0, len(schema.Columns)+1)
	for _, col := range schema.Columns {
		args = append(args, fields[col.Name])
	}
	return args
}

func logNoRows(res sql.Result, op Op, schema Schema, id int64) {
	affected, err := res.RowsAffected()
	if err != nil || affected > 0 {
		return
	}
	telemetry.Info("record.no_rows_affected", map[string]any{
		"op":   string(op),
		"kind": schema.Kind,
		"id":   id,
	})
}

var _ Gateway = (*PGGateway)(nil)
