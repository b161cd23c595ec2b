package postgres

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Column is one named, ordered column of a Frame.
type Column struct {
	Name   string
	Values []any
}

// Frame is an ordered set of named, equal-length columns — the tabular input
// accepted by BulkInsert. Build one with NewFrame; the zero value is an
// empty frame.
type Frame struct {
	columns []Column
}

// NewFrame validates the given columns and assembles a Frame. All columns
// must carry a non-empty, unique name and the same number of values.
func NewFrame(columns ...Column) (Frame, error) {
	if len(columns) == 0 {
		return Frame{}, fmt.Errorf("frame requires at least one column")
	}

	seen := make(map[string]struct{}, len(columns))
	rowCount := len(columns[0].Values)

	for _, col := range columns {
		if col.Name == "" {
			return Frame{}, fmt.Errorf("frame column name must not be empty")
		}

		if _, dup := seen[col.Name]; dup {
			return Frame{}, fmt.Errorf("duplicate frame column %q", col.Name)
		}

		seen[col.Name] = struct{}{}

		if len(col.Values) != rowCount {
			return Frame{}, fmt.Errorf(
				"frame column %q has %d values, expected %d",
				col.Name, len(col.Values), rowCount,
			)
		}
	}

	return Frame{columns: columns}, nil
}

// ColumnNames returns the column names in declaration order.
func (f Frame) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}

	return names
}

// RowCount returns the number of rows in the frame.
func (f Frame) RowCount() int {
	if len(f.columns) == 0 {
		return 0
	}

	return len(f.columns[0].Values)
}

// Rows converts the column-major frame into row-major order. Column order
// within each row matches ColumnNames.
func (f Frame) Rows() [][]any {
	rows := make([][]any, f.RowCount())

	for ri := range rows {
		row := make([]any, len(f.columns))
		for ci, col := range f.columns {
			row[ci] = col.Values[ri]
		}

		rows[ri] = row
	}

	return rows
}

// TransformColumn applies fn to every value of the named column in place.
// It is the intended way to pre-serialize nested values before BulkInsert:
//
//	err := frame.TransformColumn("owners", func(v any) (any, error) {
//		return EncodeJSONValue(v)
//	})
func (f Frame) TransformColumn(name string, fn func(any) (any, error)) error {
	for _, col := range f.columns {
		if col.Name != name {
			continue
		}

		for i, value := range col.Values {
			transformed, err := fn(value)
			if err != nil {
				return fmt.Errorf("transform column %q row %d: %w", name, i, err)
			}

			col.Values[i] = transformed
		}

		return nil
	}

	return fmt.Errorf("frame has no column %q", name)
}

// EncodeJSONValue serializes one nested value (map, slice, struct) to JSON
// text suitable for insertion into a text/json/jsonb column. Non-ASCII and
// HTML characters are preserved unescaped.
func EncodeJSONValue(v any) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode json value: %w", err)
	}

	// Encoder.Encode appends a newline after each value.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
