package records

import (
	"errors"
	"fmt"
)

// Op names a gateway operation.
type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

var (
	// ErrStoreUnavailable means no connection to the store could be acquired.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrQuery means a statement failed after a connection was acquired.
	ErrQuery = errors.New("query failed")
	// ErrNotFound is returned by Get when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrUnsupported is returned for operations a kind does not allow.
	ErrUnsupported = errors.New("operation not supported")
)

// StoreError carries the failure class (ErrStoreUnavailable or ErrQuery) together with
// the underlying driver error. Both match through errors.Is.
type StoreError struct {
	Class error
	Op    Op
	Kind  string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Kind, e.Class, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Class, e.Err}
}

func unavailable(op Op, kind string, err error) error {
	return &StoreError{Class: ErrStoreUnavailable, Op: op, Kind: kind, Err: err}
}

func queryFailed(op Op, kind string, err error) error {
	return &StoreError{Class: ErrQuery, Op: op, Kind: kind, Err: err}
}
