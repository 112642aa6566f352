package records

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/internal/shared/metrics"
)

// Service applies the per-kind rules on top of a Gateway and records metrics for every
// operation.
type Service struct {
	Gateway Gateway
	now     func() time.Time
}

// NewService constructs a Service.
func NewService(gw Gateway) *Service {
	return &Service{Gateway: gw, now: time.Now}
}

func (s *Service) List(ctx context.Context, schema Schema) ([]Record, error) {
	start := s.clock()
	if !schema.Supports(OpList) {
		return nil, s.observe(schema, OpList, start, ErrUnsupported)
	}
	recs, err := s.Gateway.List(ctx, schema)
	return recs, s.observe(schema, OpList, start, err)
}

// Get returns the record or ErrNotFound.
func (s *Service) Get(ctx context.Context, schema Schema, id int64) (Record, error) {
	start := s.clock()
	if !schema.Supports(OpGet) {
		return Record{}, s.observe(schema, OpGet, start, ErrUnsupported)
	}
	rec, err := s.Gateway.Get(ctx, schema, id)
	return rec, s.observe(schema, OpGet, start, err)
}

// Create stores fields exactly as received. Columns missing from fields are stored as
// empty strings.
func (s *Service) Create(ctx context.Context, schema Schema, fields Fields) (int64, error) {
	start := s.clock()
	id, err := s.Gateway.Create(ctx, schema, schema.Normalize(fields))
	return id, s.observe(schema, OpCreate, start, err)
}

// Update overwrites the record at id. A missing id is not an error.
func (s *Service) Update(ctx context.Context, schema Schema, id int64, fields Fields) error {
	start := s.clock()
	if !schema.Supports(OpUpdate) {
		return s.observe(schema, OpUpdate, start, ErrUnsupported)
	}
	err := s.Gateway.Update(ctx, schema, id, schema.Normalize(fields))
	return s.observe(schema, OpUpdate, start, err)
}

// Delete removes the record at id. A missing id is not an error.
func (s *Service) Delete(ctx context.Context, schema Schema, id int64) error {
	start := s.clock()
	if !schema.Supports(OpDelete) {
		return s.observe(schema, OpDelete, start, ErrUnsupported)
	}
	err := s.Gateway.Delete(ctx, schema, id)
	return s.observe(schema, OpDelete, start, err)
}

// Ping reports whether the underlying store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.Gateway.Ping(ctx)
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Service) observe(schema Schema, op Op, start time.Time, err error) error {
	elapsed := float64(s.clock().Sub(start).Microseconds()) / 1000.0
	metrics.ObserveRecordOp(schema.Kind, string(op), outcome(err), elapsed)
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrStoreUnavailable):
		return "unavailable"
	case errors.Is(err, ErrUnsupported):
		return "unsupported"
	default:
		return "query_error"
	}
}
