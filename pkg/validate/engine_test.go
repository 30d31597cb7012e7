package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krytenuk/doctrine1/pkg/validate"
)

// stubRecord is a minimal Record for engine tests.
type stubRecord struct {
	exists   bool
	modified map[string]any
	all      map[string]any
	table    validate.Table
}

func (r *stubRecord) Exists() bool                   { return r.exists }
func (r *stubRecord) ModifiedFields() map[string]any { return r.modified }
func (r *stubRecord) AllFields() map[string]any      { return r.all }
func (r *stubRecord) Table() validate.Table          { return r.table }

// stubTable records which fields it was asked to validate and fails the
// ones listed in failFields.
type stubTable struct {
	seen       []string
	failFields map[string]validate.Code
	uniqueErr  error
	uniqueFail string
}

func (t *stubTable) ValidateField(stack *validate.ErrorStack, field string, value any, rec validate.Record) {
	t.seen = append(t.seen, field)
	if code, ok := t.failFields[field]; ok {
		stack.Add(field, code)
	}
}

func (t *stubTable) ValidateUniques(ctx context.Context, stack *validate.ErrorStack, rec validate.Record) error {
	if t.uniqueErr != nil {
		return t.uniqueErr
	}
	if t.uniqueFail != "" {
		stack.Add(t.uniqueFail, validate.CodeUnique)
	}
	return nil
}

func TestEngineValidateRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("new record checks all fields", func(t *testing.T) {
		t.Parallel()

		table := &stubTable{}
		rec := &stubRecord{
			exists:   false,
			modified: map[string]any{"name": "x"},
			all:      map[string]any{"name": "x", "email": "y", "age": 3},
			table:    table,
		}

		engine := validate.NewEngine()
		require.NoError(t, engine.ValidateRecord(ctx, rec))

		assert.ElementsMatch(t, []string{"name", "email", "age"}, table.seen)
		assert.False(t, engine.HasErrors())
	})

	t.Run("existing record checks modified fields only", func(t *testing.T) {
		t.Parallel()

		table := &stubTable{}
		rec := &stubRecord{
			exists:   true,
			modified: map[string]any{"email": "y"},
			all:      map[string]any{"name": "x", "email": "y"},
			table:    table,
		}

		engine := validate.NewEngine()
		require.NoError(t, engine.ValidateRecord(ctx, rec))

		assert.Equal(t, []string{"email"}, table.seen)
	})

	t.Run("failures accumulate without being returned", func(t *testing.T) {
		t.Parallel()

		table := &stubTable{
			failFields: map[string]validate.Code{"name": validate.CodeLength},
			uniqueFail: "email",
		}
		rec := &stubRecord{
			all:   map[string]any{"name": "x", "email": "y"},
			table: table,
		}

		engine := validate.NewEngine()
		require.NoError(t, engine.ValidateRecord(ctx, rec))

		require.True(t, engine.HasErrors())
		assert.Equal(t, []validate.Code{validate.CodeLength}, engine.Errors().Get("name"))
		assert.Equal(t, []validate.Code{validate.CodeUnique}, engine.Errors().Get("email"))
	})

	t.Run("stack resets between passes", func(t *testing.T) {
		t.Parallel()

		table := &stubTable{failFields: map[string]validate.Code{"name": validate.CodeType}}
		rec := &stubRecord{all: map[string]any{"name": 1}, table: table}

		engine := validate.NewEngine()
		require.NoError(t, engine.ValidateRecord(ctx, rec))
		require.True(t, engine.HasErrors())

		clean := &stubRecord{all: map[string]any{"name": "ok"}, table: &stubTable{}}
		require.NoError(t, engine.ValidateRecord(ctx, clean))
		assert.False(t, engine.HasErrors())
	})

	t.Run("uniqueness probe failure propagates", func(t *testing.T) {
		t.Parallel()

		probeErr := errors.New("connection refused")
		table := &stubTable{uniqueErr: probeErr}
		rec := &stubRecord{all: map[string]any{"name": "x"}, table: table}

		engine := validate.NewEngine()
		err := engine.ValidateRecord(ctx, rec)
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrUniquenessCheck)
		assert.ErrorIs(t, err, probeErr)
	})
}
