package table

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/krytenuk/doctrine1/pkg/fieldtype"
)

// schemaColumn mirrors one column entry of a YAML schema document.
type schemaColumn struct {
	Type          string   `yaml:"type"`
	Length        *int     `yaml:"length"`
	NotNull       bool     `yaml:"notnull"`
	AutoIncrement bool     `yaml:"autoincrement"`
	Unique        bool     `yaml:"unique"`
	Validators    []string `yaml:"validators"`
}

// schemaTable mirrors one table entry of a YAML schema document.
type schemaTable struct {
	Columns map[string]schemaColumn `yaml:"columns"`
	Uniques [][]string              `yaml:"uniques"`
}

// LoadSchema reads a YAML schema document and builds a Definition per
// declared table. The expected shape:
//
//	users:
//	  columns:
//	    name:  { type: string, length: 255, notnull: true }
//	    email: { type: string, length: 100, unique: true }
//	    born:  { type: date }
//	  uniques:
//	    - [org_id, slug]
//
// Every returned definition has passed Check.
func LoadSchema(r io.Reader, opts ...DefinitionOption) (map[string]*Definition, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	return ParseSchema(raw, opts...)
}

// ParseSchema builds table definitions from raw YAML schema bytes.
func ParseSchema(raw []byte, opts ...DefinitionOption) (map[string]*Definition, error) {
	var doc map[string]schemaTable
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	defs := make(map[string]*Definition, len(doc))
	for tableName, tbl := range doc {
		def := NewDefinition(tableName, opts...)

		// YAML maps carry no order; sort for a stable column order.
		names := make([]string, 0, len(tbl.Columns))
		for name := range tbl.Columns {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			sc := tbl.Columns[name]
			typ, err := fieldtype.Parse(sc.Type)
			if err != nil {
				return nil, fmt.Errorf("%w: table %q column %q: %w", ErrInvalidSchema, tableName, name, err)
			}
			def.AddColumn(name, fieldtype.Column{
				Type:          typ,
				Length:        sc.Length,
				NotNull:       sc.NotNull,
				AutoIncrement: sc.AutoIncrement,
				Unique:        sc.Unique,
				Validators:    sc.Validators,
			})
		}
		for _, group := range tbl.Uniques {
			def.AddUnique(group...)
		}

		if err := def.Check(); err != nil {
			return nil, fmt.Errorf("%w: table %q: %w", ErrInvalidSchema, tableName, err)
		}
		defs[tableName] = def
	}
	return defs, nil
}
