package validate

import (
	"context"
	"errors"
	"log/slog"
	"sort"
)

// Record is the entity contract the engine validates against: an
// in-memory representation of a row of persisted data, owned by a Table.
type Record interface {
	// Exists reports whether the record is already persisted. Persisted
	// records are validated on their modified fields only; transient ones
	// on every field.
	Exists() bool

	// ModifiedFields returns the fields changed since load.
	ModifiedFields() map[string]any

	// AllFields returns every field the record carries.
	AllFields() map[string]any

	// Table returns the metadata object owning this record's field
	// definitions and cross-field constraints.
	Table() Table
}

// Table is the schema/behavior contract the engine delegates field and
// uniqueness checks to.
type Table interface {
	// ValidateField checks a single field against its declared metadata,
	// recording any failures on the stack.
	ValidateField(stack *ErrorStack, field string, value any, rec Record)

	// ValidateUniques checks cross-field uniqueness constraints for the
	// whole record, recording violations on the stack. The returned error
	// reports infrastructure failure only (e.g. an unreachable database),
	// never a validation verdict.
	ValidateUniques(ctx context.Context, stack *ErrorStack, rec Record) error
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for debug records of failed passes.
func WithLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Engine performs record-level validation: one instance owns one error
// stack, reset at the start of each pass. Validation failures are
// recorded, never returned as errors.
type Engine struct {
	stack *ErrorStack
	log   *slog.Logger
}

// NewEngine creates an engine with an empty error stack.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		stack: NewErrorStack(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateRecord checks every relevant field of rec against its table's
// declared metadata and then the table's uniqueness constraints. Persisted
// records are checked on their modified fields only; new records on all
// fields. Failures accumulate on the engine's stack; the returned error
// reports infrastructure trouble from the uniqueness probe, nothing else.
func (e *Engine) ValidateRecord(ctx context.Context, rec Record) error {
	e.stack.Reset()

	fields := rec.AllFields()
	if rec.Exists() {
		fields = rec.ModifiedFields()
	}

	table := rec.Table()

	// Deterministic field order keeps error output stable across runs.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		table.ValidateField(e.stack, name, fields[name], rec)
	}

	if err := table.ValidateUniques(ctx, e.stack, rec); err != nil {
		return errors.Join(ErrUniquenessCheck, err)
	}

	if !e.stack.IsEmpty() {
		e.log.DebugContext(ctx, "record validation failed",
			slog.Int("fields", len(e.stack.Fields())),
			slog.Int("errors", e.stack.Count()))
	}

	return nil
}

// HasErrors reports whether the last validation pass recorded failures.
func (e *Engine) HasErrors() bool {
	return !e.stack.IsEmpty()
}

// Errors returns the engine's error stack for inspection.
func (e *Engine) Errors() *ErrorStack {
	return e.stack
}
