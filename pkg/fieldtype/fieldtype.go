package fieldtype

// Type identifies the semantic type declared for a column. The set is
// closed: every value a table definition may carry is one of the constants
// below, and Parse rejects anything else.
type Type string

const (
	Float     Type = "float"
	Double    Type = "double"
	Decimal   Type = "decimal"
	Integer   Type = "integer"
	String    Type = "string"
	Blob      Type = "blob"
	Clob      Type = "clob"
	Gzip      Type = "gzip"
	Array     Type = "array"
	Object    Type = "object"
	JSON      Type = "json"
	Boolean   Type = "boolean"
	Timestamp Type = "timestamp"
	Time      Type = "time"
	Date      Type = "date"
	Enum      Type = "enum"
	Set       Type = "set"
)

// all lists every declared type tag, used by Valid and by tests that need
// to iterate the full enumeration.
var all = map[Type]struct{}{
	Float: {}, Double: {}, Decimal: {}, Integer: {}, String: {},
	Blob: {}, Clob: {}, Gzip: {}, Array: {}, Object: {}, JSON: {},
	Boolean: {}, Timestamp: {}, Time: {}, Date: {}, Enum: {}, Set: {},
}

// Valid reports whether t is one of the declared type tags.
func (t Type) Valid() bool {
	_, ok := all[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Parse converts a raw tag (as found in schema files) into a Type,
// failing closed on anything outside the enumeration.
func Parse(raw string) (Type, error) {
	t := Type(raw)
	if !t.Valid() {
		return "", unknownType(raw)
	}
	return t, nil
}

// All returns the declared type tags in no particular order.
func All() []Type {
	types := make([]Type, 0, len(all))
	for t := range all {
		types = append(types, t)
	}
	return types
}
