// Package postgres provides a small PostgreSQL access helper built around a
// single lazily established connection.
//
// A Client owns at most one connection handle. The handle is opened on the
// first operation and re-opened when a later operation finds it closed;
// there is no retry loop, no backoff and no pooling. A Client is not safe
// for concurrent use; callers running from multiple goroutines must
// serialize access or use one Client per worker.
//
// Every operation runs inside its own transaction: committed on success,
// rolled back on any error.
//
// Bulk loading goes through BulkInsert, which takes a Frame of named,
// equal-length columns. Columns holding nested values (maps, slices) must be
// serialized to JSON text by the caller first:
//
//	_ = frame.TransformColumn("owners", func(v any) (any, error) {
//		return postgres.EncodeJSONValue(v)
//	})
//	err := client.BulkInsert(ctx, frame, "", "events")
package postgres
