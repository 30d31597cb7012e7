package table

import (
	"maps"
	"reflect"

	"github.com/google/uuid"

	"github.com/krytenuk/doctrine1/pkg/validate"
)

// Row is a map-backed record implementation: field values plus a snapshot
// of the data as loaded, from which the modified-field set is derived.
// It implements validate.Record.
type Row struct {
	id       uuid.UUID
	def      *Definition
	persists bool
	data     map[string]any
	snapshot map[string]any
}

// NewRow creates a transient (not yet persisted) row for def.
func NewRow(def *Definition) *Row {
	return &Row{
		id:   uuid.New(),
		def:  def,
		data: make(map[string]any),
	}
}

// LoadRow creates a row representing data already persisted under id.
// The given data becomes the snapshot modified fields are diffed against.
func LoadRow(def *Definition, id uuid.UUID, data map[string]any) *Row {
	return &Row{
		id:       id,
		def:      def,
		persists: true,
		data:     maps.Clone(data),
		snapshot: maps.Clone(data),
	}
}

// ID returns the row's identity.
func (r *Row) ID() uuid.UUID {
	return r.id
}

// Identifier names the identity column and value, used by uniqueness
// probes to exclude the row itself.
func (r *Row) Identifier() (string, any) {
	return "id", r.id
}

// Set assigns a field value.
func (r *Row) Set(field string, value any) *Row {
	r.data[field] = value
	return r
}

// Get returns a field value.
func (r *Row) Get(field string) (any, bool) {
	v, ok := r.data[field]
	return v, ok
}

// Exists reports whether the row is persisted.
func (r *Row) Exists() bool {
	return r.persists
}

// ModifiedFields returns the fields whose value differs from the loaded
// snapshot. For transient rows that is every assigned field.
func (r *Row) ModifiedFields() map[string]any {
	modified := make(map[string]any)
	for field, value := range r.data {
		original, had := r.snapshot[field]
		if !had || !reflect.DeepEqual(original, value) {
			modified[field] = value
		}
	}
	return modified
}

// AllFields returns a copy of every field the row carries.
func (r *Row) AllFields() map[string]any {
	return maps.Clone(r.data)
}

// Table returns the owning table metadata.
func (r *Row) Table() validate.Table {
	return r.def
}

// MarkPersisted records that the row has been written out: it now exists
// and the current data becomes the new snapshot.
func (r *Row) MarkPersisted() {
	r.persists = true
	r.snapshot = maps.Clone(r.data)
}
