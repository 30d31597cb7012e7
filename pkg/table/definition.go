package table

import (
	"context"
	"fmt"

	"github.com/krytenuk/doctrine1/pkg/fieldtype"
	"github.com/krytenuk/doctrine1/pkg/validate"
	"github.com/krytenuk/doctrine1/pkg/validators"
)

// UniqueChecker probes backing storage for an existing row carrying the
// given column values. excludeColumn/excludeValue, when set, exclude the
// record's own row so an unchanged persisted record never collides with
// itself.
type UniqueChecker interface {
	Exists(ctx context.Context, table string, columns []string, values []any, excludeColumn string, excludeValue any) (bool, error)
}

// identifiable is satisfied by records that know their own identity,
// letting uniqueness probes exclude the record's persisted row.
type identifiable interface {
	Identifier() (column string, value any)
}

// Definition is concrete table metadata: the field descriptors, not-null
// and uniqueness constraints, and extra named semantic validators for one
// entity type. It implements validate.Table.
type Definition struct {
	name       string
	columns    map[string]fieldtype.Column
	order      []string
	uniques    [][]string
	registry   *validators.Registry
	checker    UniqueChecker
	lengthOpts []validate.Option
}

// DefinitionOption configures a Definition.
type DefinitionOption func(*Definition)

// WithRegistry sets the validator registry used to resolve per-column
// named validators. Defaults to the process-wide registry.
func WithRegistry(r *validators.Registry) DefinitionOption {
	return func(d *Definition) {
		if r != nil {
			d.registry = r
		}
	}
}

// WithUniqueChecker wires the storage probe used by ValidateUniques.
// Without one, uniqueness constraints are declared but not enforced.
func WithUniqueChecker(c UniqueChecker) DefinitionOption {
	return func(d *Definition) {
		d.checker = c
	}
}

// WithLengthOptions forwards options (e.g. the decimal separator) to
// every length check this definition performs.
func WithLengthOptions(opts ...validate.Option) DefinitionOption {
	return func(d *Definition) {
		d.lengthOpts = append(d.lengthOpts, opts...)
	}
}

// NewDefinition creates empty table metadata for the named table.
func NewDefinition(name string, opts ...DefinitionOption) *Definition {
	d := &Definition{
		name:     name,
		columns:  make(map[string]fieldtype.Column),
		registry: validators.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the table name.
func (d *Definition) Name() string {
	return d.name
}

// AddColumn declares a field. A column flagged Unique becomes its own
// single-field uniqueness group. Redeclaring a field replaces it.
func (d *Definition) AddColumn(name string, col fieldtype.Column) *Definition {
	if _, exists := d.columns[name]; !exists {
		d.order = append(d.order, name)
	}
	d.columns[name] = col
	if col.Unique {
		d.uniques = append(d.uniques, []string{name})
	}
	return d
}

// AddUnique declares a multi-column uniqueness group.
func (d *Definition) AddUnique(fields ...string) *Definition {
	if len(fields) > 0 {
		d.uniques = append(d.uniques, fields)
	}
	return d
}

// Column returns the descriptor declared for name.
func (d *Definition) Column(name string) (fieldtype.Column, bool) {
	col, ok := d.columns[name]
	return col, ok
}

// Columns returns the declared field names in declaration order.
func (d *Definition) Columns() []string {
	return d.order
}

// Check verifies the definition itself: every column carries a declared
// type tag, every named validator resolves, and every uniqueness group
// references declared columns. Unresolvable validator names surface here
// as errors (broken setup), so ValidateField never meets one at runtime.
func (d *Definition) Check() error {
	for _, name := range d.order {
		col := d.columns[name]
		if !col.Type.Valid() {
			return fmt.Errorf("%w: column %q declares %q", fieldtype.ErrUnknownType, name, col.Type)
		}
		for _, vname := range col.Validators {
			if _, err := d.registry.Get(vname); err != nil {
				return fmt.Errorf("column %q: %w", name, err)
			}
		}
	}
	for _, group := range d.uniques {
		for _, field := range group {
			if _, ok := d.columns[field]; !ok {
				return fmt.Errorf("%w: unique group references %q", ErrUnknownColumn, field)
			}
		}
	}
	return nil
}

// ValidateField checks one field against its declared metadata, recording
// failures on the stack. Fields without a declared column and deferred
// expression values are skipped. Call Check once after building the
// definition; an unresolvable named validator is silently skipped here.
func (d *Definition) ValidateField(stack *validate.ErrorStack, field string, value any, rec validate.Record) {
	col, ok := d.columns[field]
	if !ok {
		return
	}
	if validate.IsExpression(value) {
		return
	}

	if value == nil && col.NotNull && !col.AutoIncrement {
		stack.Add(field, validate.CodeNotNull)
		return
	}

	if !validate.IsValidType(value, col.Type) {
		stack.Add(field, validate.CodeType)
	}
	if !validate.ValidateLength(value, col.Type, col.Length, d.lengthOpts...) {
		stack.Add(field, validate.CodeLength)
	}

	for _, vname := range col.Validators {
		v, err := d.registry.Get(vname)
		if err != nil {
			continue
		}
		if !v.Validate(value) {
			stack.Add(field, validate.Code(vname))
		}
	}
}

// ValidateUniques probes storage for rows colliding with the record on
// any declared uniqueness group, recording code "unique" on every field
// of a violated group. Groups containing a nil value are skipped: SQL
// NULL never collides. Without a wired UniqueChecker this is a no-op.
func (d *Definition) ValidateUniques(ctx context.Context, stack *validate.ErrorStack, rec validate.Record) error {
	if d.checker == nil || len(d.uniques) == 0 {
		return nil
	}

	data := rec.AllFields()

	var excludeColumn string
	var excludeValue any
	if id, ok := rec.(identifiable); ok && rec.Exists() {
		excludeColumn, excludeValue = id.Identifier()
	}

	for _, group := range d.uniques {
		values := make([]any, 0, len(group))
		skip := false
		for _, field := range group {
			v, ok := data[field]
			if !ok || v == nil {
				skip = true
				break
			}
			values = append(values, v)
		}
		if skip {
			continue
		}

		exists, err := d.checker.Exists(ctx, d.name, group, values, excludeColumn, excludeValue)
		if err != nil {
			return err
		}
		if exists {
			for _, field := range group {
				stack.Add(field, validate.CodeUnique)
			}
		}
	}
	return nil
}
