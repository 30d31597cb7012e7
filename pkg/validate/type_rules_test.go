package validate_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krytenuk/doctrine1/pkg/fieldtype"
	"github.com/krytenuk/doctrine1/pkg/validate"
)

func TestIsValidTypeNilAndExpression(t *testing.T) {
	t.Parallel()

	t.Run("nil is valid for every declared type", func(t *testing.T) {
		t.Parallel()

		for _, typ := range fieldtype.All() {
			assert.True(t, validate.IsValidType(nil, typ), "type %q", typ)
		}
	})

	t.Run("typed nil is valid", func(t *testing.T) {
		t.Parallel()

		var p *int
		assert.True(t, validate.IsValidType(p, fieldtype.Integer))
		var m map[string]any
		assert.True(t, validate.IsValidType(m, fieldtype.String))
	})

	t.Run("expressions skip type checking", func(t *testing.T) {
		t.Parallel()

		expr := validate.Expr("NOW()")
		for _, typ := range fieldtype.All() {
			assert.True(t, validate.IsValidType(expr, typ), "type %q", typ)
		}
	})
}

func TestIsValidTypeShapeShortCircuit(t *testing.T) {
	t.Parallel()

	composite := map[string]any{"a": 1}
	sequence := []int{1, 2, 3}

	assert.True(t, validate.IsValidType(composite, fieldtype.Object))
	assert.False(t, validate.IsValidType(composite, fieldtype.String))
	assert.False(t, validate.IsValidType(composite, fieldtype.Array))

	assert.True(t, validate.IsValidType(sequence, fieldtype.Array))
	assert.False(t, validate.IsValidType(sequence, fieldtype.Object))
	assert.False(t, validate.IsValidType(sequence, fieldtype.Set))

	type profile struct{ Name string }
	assert.True(t, validate.IsValidType(profile{Name: "x"}, fieldtype.Object))
	assert.False(t, validate.IsValidType(profile{Name: "x"}, fieldtype.String))
}

func TestIsValidTypeDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		typ      fieldtype.Type
		expected bool
	}{
		{name: "float from string", value: "4.2", typ: fieldtype.Float, expected: true},
		{name: "float from float64", value: 4.2, typ: fieldtype.Float, expected: true},
		{name: "float from int", value: 4, typ: fieldtype.Float, expected: true},
		{name: "float rejects trailing garbage", value: "4.2abc", typ: fieldtype.Float, expected: false},
		{name: "float rejects leading zeros", value: "004.2", typ: fieldtype.Float, expected: false},
		{name: "decimal rejects non-numeric", value: "abc", typ: fieldtype.Decimal, expected: false},
		{name: "double accepts plain number", value: "10.75", typ: fieldtype.Double, expected: true},

		{name: "integer accepts whole string", value: "4", typ: fieldtype.Integer, expected: true},
		{name: "integer accepts int", value: 4, typ: fieldtype.Integer, expected: true},
		{name: "integer rejects fraction", value: "4.2", typ: fieldtype.Integer, expected: false},
		{name: "integer rejects trailing point zero", value: "4.0", typ: fieldtype.Integer, expected: false},
		{name: "integer rejects float value with fraction", value: 4.2, typ: fieldtype.Integer, expected: false},
		{name: "integer rejects text", value: "four", typ: fieldtype.Integer, expected: false},

		{name: "string accepts text", value: "hello", typ: fieldtype.String, expected: true},
		{name: "string accepts numeric", value: 42, typ: fieldtype.String, expected: true},
		{name: "string rejects bool", value: true, typ: fieldtype.String, expected: false},

		{name: "blob accepts text", value: "raw", typ: fieldtype.Blob, expected: true},
		{name: "blob accepts bytes", value: []byte{0x1, 0x2}, typ: fieldtype.Blob, expected: true},
		{name: "blob accepts reader", value: bytes.NewReader([]byte("x")), typ: fieldtype.Blob, expected: true},
		{name: "blob rejects int", value: 7, typ: fieldtype.Blob, expected: false},

		{name: "clob accepts text", value: "long text", typ: fieldtype.Clob, expected: true},
		{name: "clob rejects bytes", value: []byte("x"), typ: fieldtype.Clob, expected: false},
		{name: "gzip accepts text", value: "compressed", typ: fieldtype.Gzip, expected: true},
		{name: "gzip rejects number", value: 1.5, typ: fieldtype.Gzip, expected: false},

		{name: "json rejects text", value: `{"a":1}`, typ: fieldtype.JSON, expected: false},

		{name: "boolean accepts bool", value: true, typ: fieldtype.Boolean, expected: true},
		{name: "boolean accepts zero", value: 0, typ: fieldtype.Boolean, expected: true},
		{name: "boolean accepts one string", value: "1", typ: fieldtype.Boolean, expected: true},
		{name: "boolean rejects two", value: 2, typ: fieldtype.Boolean, expected: false},
		{name: "boolean rejects text", value: "yes", typ: fieldtype.Boolean, expected: false},

		{name: "date accepts iso date", value: "2024-02-29", typ: fieldtype.Date, expected: true},
		{name: "date rejects bad calendar day", value: "2023-02-30", typ: fieldtype.Date, expected: false},
		{name: "time accepts clock time", value: "13:45:00", typ: fieldtype.Time, expected: true},
		{name: "time rejects bad hour", value: "25:00:00", typ: fieldtype.Time, expected: false},
		{name: "timestamp accepts combined", value: "2024-01-31 12:00:00", typ: fieldtype.Timestamp, expected: true},
		{name: "timestamp accepts time value", value: time.Now(), typ: fieldtype.Timestamp, expected: true},
		{name: "timestamp rejects garbage", value: "soon", typ: fieldtype.Timestamp, expected: false},

		{name: "enum accepts text", value: "active", typ: fieldtype.Enum, expected: true},
		{name: "enum accepts integer", value: 3, typ: fieldtype.Enum, expected: true},
		{name: "enum rejects float", value: 3.5, typ: fieldtype.Enum, expected: false},

		{name: "set accepts text", value: "a,b", typ: fieldtype.Set, expected: true},
		{name: "set rejects number", value: 1, typ: fieldtype.Set, expected: false},

		{name: "unknown tag fails closed", value: "x", typ: fieldtype.Type("varchar"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validate.IsValidType(tt.value, tt.typ))
		})
	}
}
