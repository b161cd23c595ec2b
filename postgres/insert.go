package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	defaultSchema = "public"

	// PostgreSQL rejects statements with more than 65535 bind parameters,
	// so the configured page size is additionally capped per statement by
	// the column count.
	maxBindParameters = 65535
)

// BulkInsert loads the frame into schemaName.tableName with batched
// multi-row INSERT statements. An empty schemaName selects "public".
//
// The frame's column names must exactly match the target table's columns.
// Rows are split into pages of at most PageSize rows; all pages are queued
// into one batch and flushed in a single round-trip pipeline inside the
// per-call transaction, so a failure anywhere rolls back the entire insert.
//
// On success two diagnostic lines are logged: one naming the table, row
// count and insert duration, and one with the total call duration. Errors
// are not logged, only returned.
func (c *Client) BulkInsert(ctx context.Context, frame Frame, schemaName, tableName string) error {
	start := time.Now()

	if schemaName == "" {
		schemaName = defaultSchema
	}

	rows := frame.Rows()
	if len(rows) == 0 {
		return nil
	}

	columns := frame.ColumnNames()
	perStatement := rowsPerStatement(len(columns), c.config.PageSize)

	var insertElapsed time.Duration

	err := c.inTransaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}

		for offset := 0; offset < len(rows); offset += perStatement {
			end := offset + perStatement
			if end > len(rows) {
				end = len(rows)
			}

			statement, args := buildInsertStatement(schemaName, tableName, columns, rows[offset:end])
			batch.Queue(statement, args...)
		}

		results := tx.SendBatch(ctx, batch)

		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()

				return err
			}
		}

		if err := results.Close(); err != nil {
			return err
		}

		insertElapsed = time.Since(start)

		return nil
	})
	if err != nil {
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			return err
		}

		return &InsertError{Schema: schemaName, Table: tableName, Err: err}
	}

	c.logger.Infof(
		"data inserted in table %q: %d rows in %.2f seconds",
		strings.ToUpper(tableName), len(rows), insertElapsed.Seconds(),
	)
	c.logger.Infof("bulk insert finished: total time %.2f seconds", time.Since(start).Seconds())

	return nil
}

// rowsPerStatement returns how many rows fit into one INSERT statement:
// the configured page size, capped by the bind-parameter limit.
func rowsPerStatement(columnCount, pageSize int) int {
	limit := maxBindParameters / columnCount
	if limit < 1 {
		limit = 1
	}

	if pageSize < limit {
		return pageSize
	}

	return limit
}

// buildInsertStatement renders one multi-row INSERT with positional
// placeholders and returns it with the flattened argument list. Identifiers
// are quoted with pgx's sanitizer.
func buildInsertStatement(schemaName, tableName string, columns []string, rows [][]any) (string, []any) {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
	}

	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(pgx.Identifier{schemaName, tableName}.Sanitize())
	sb.WriteString(" (")
	sb.WriteString(strings.Join(quoted, ", "))
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(columns))
	placeholder := 1

	for ri, row := range rows {
		if ri > 0 {
			sb.WriteString(", ")
		}

		sb.WriteByte('(')

		for ci, value := range row {
			if ci > 0 {
				sb.WriteString(", ")
			}

			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(placeholder))
			placeholder++

			args = append(args, value)
		}

		sb.WriteByte(')')
	}

	return sb.String(), args
}
