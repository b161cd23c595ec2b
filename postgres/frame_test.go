//go:build unit

package postgres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrameValidation(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		errText string
	}{
		{
			name:    "no columns",
			columns: nil,
			errText: "at least one column",
		},
		{
			name:    "empty column name",
			columns: []Column{{Name: "", Values: []any{1}}},
			errText: "must not be empty",
		},
		{
			name: "duplicate column name",
			columns: []Column{
				{Name: "a", Values: []any{1}},
				{Name: "a", Values: []any{2}},
			},
			errText: "duplicate",
		},
		{
			name: "unequal column lengths",
			columns: []Column{
				{Name: "a", Values: []any{1, 2}},
				{Name: "b", Values: []any{1}},
			},
			errText: "expected 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrame(tt.columns...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestFrameRowsIsRowMajor(t *testing.T) {
	frame, err := NewFrame(
		Column{Name: "id", Values: []any{1, 2}},
		Column{Name: "name", Values: []any{"a", "b"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, frame.ColumnNames())
	assert.Equal(t, 2, frame.RowCount())
	assert.Equal(t, [][]any{{1, "a"}, {2, "b"}}, frame.Rows())
}

func TestFrameZeroValue(t *testing.T) {
	var frame Frame

	assert.Zero(t, frame.RowCount())
	assert.Empty(t, frame.ColumnNames())
	assert.Empty(t, frame.Rows())
}

func TestFrameTransformColumn(t *testing.T) {
	frame, err := NewFrame(
		Column{Name: "id", Values: []any{1}},
		Column{Name: "owners", Values: []any{map[string]any{"user": []any{11540}}}},
	)
	require.NoError(t, err)

	err = frame.TransformColumn("owners", func(v any) (any, error) {
		return EncodeJSONValue(v)
	})
	require.NoError(t, err)

	rows := frame.Rows()
	assert.Equal(t, `{"user":[11540]}`, rows[0][1])
	// Untouched columns keep their values.
	assert.Equal(t, 1, rows[0][0])
}

func TestFrameTransformColumnUnknownColumn(t *testing.T) {
	frame, err := NewFrame(Column{Name: "id", Values: []any{1}})
	require.NoError(t, err)

	err = frame.TransformColumn("missing", func(v any) (any, error) { return v, nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no column "missing"`)
}

func TestFrameTransformColumnPropagatesError(t *testing.T) {
	sentinel := errors.New("bad value")

	frame, err := NewFrame(Column{Name: "id", Values: []any{1, 2}})
	require.NoError(t, err)

	err = frame.TransformColumn("id", func(v any) (any, error) {
		if v == 2 {
			return nil, sentinel
		}

		return v, nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "row 1")
}

func TestEncodeJSONValue(t *testing.T) {
	encoded, err := EncodeJSONValue(map[string]any{"user": []any{11540}})
	require.NoError(t, err)
	assert.Equal(t, `{"user":[11540]}`, encoded)
}

func TestEncodeJSONValuePreservesNonASCIIAndHTML(t *testing.T) {
	encoded, err := EncodeJSONValue(map[string]any{"note": "héllo <b>&</b>"})
	require.NoError(t, err)

	// Non-ASCII and HTML characters must pass through unescaped.
	assert.Equal(t, `{"note":"héllo <b>&</b>"}`, encoded)
}

func TestEncodeJSONValueNoTrailingNewline(t *testing.T) {
	encoded, err := EncodeJSONValue([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", encoded)
}

func TestEncodeJSONValueRejectsUnsupportedType(t *testing.T) {
	_, err := EncodeJSONValue(make(chan int))
	require.Error(t, err)
}
