package postgres

import (
	"errors"
	"fmt"
)

// ErrClientClosed is reported by operations on a Client after Close.
var ErrClientClosed = errors.New("client is closed")

// ConnectionError indicates that the connection handle could not be
// established or re-established.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("postgres: connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError indicates that a read or write statement was rejected by the
// server. The underlying driver error is available via Unwrap.
type QueryError struct {
	Statement string
	Err       error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("postgres: query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// InsertError indicates a failed bulk insert: column mismatch, constraint
// violation, or a value the driver could not encode (for example a nested
// map that was not serialized with EncodeJSONValue first).
type InsertError struct {
	Schema string
	Table  string
	Err    error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("postgres: bulk insert into %s.%s failed: %v", e.Schema, e.Table, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}
