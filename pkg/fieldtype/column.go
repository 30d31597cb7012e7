package fieldtype

// Column describes the declared constraints of a single field. A nil
// Length means the field carries no length constraint.
type Column struct {
	Type          Type
	Length        *int
	NotNull       bool
	AutoIncrement bool
	Unique        bool
	// Validators names extra semantic checks resolved through the
	// validator registry, e.g. a custom date format registered by the
	// application.
	Validators []string
}

// Len is a convenience constructor for optional length constraints.
func Len(n int) *int {
	return &n
}

// HasLength reports whether the column constrains value length.
func (c Column) HasLength() bool {
	return c.Length != nil
}
