// Package table provides a reference implementation of the metadata
// collaborators the validation engine works against: a Definition holding
// column descriptors and cross-field constraints, a map-backed Row with
// modified-field tracking, YAML schema loading, and a PostgreSQL-backed
// uniqueness probe.
//
// # Architecture
//
//   - Definition – concrete table metadata implementing validate.Table.
//     Its field hook composes the type check, the length check, the
//     not-null constraint and any per-column named validators resolved
//     through the validators registry. Its uniqueness hook walks the
//     declared unique groups and asks a UniqueChecker whether a colliding
//     row exists.
//   - Row – a record implementation (validate.Record): field values plus
//     a loaded-data snapshot, so the modified set is a diff rather than
//     bookkeeping on every Set.
//   - LoadSchema/ParseSchema – build checked definitions from YAML schema
//     documents of the classic columns/uniques shape.
//   - PGUniqueChecker – issues one read-only EXISTS query per uniqueness
//     group through any pgx querier; the engine stays free of I/O unless
//     a checker is wired in.
//
// The engine in pkg/validate accepts any validate.Table/validate.Record;
// this package is one implementation, not a requirement.
//
// # Usage
//
//	defs, err := table.LoadSchema(schemaFile,
//	    table.WithUniqueChecker(table.NewPGUniqueChecker(pool)))
//	if err != nil {
//	    return err
//	}
//
//	row := table.NewRow(defs["users"]).
//	    Set("name", "ada").
//	    Set("email", "ada@example.com")
//
//	engine := validate.NewEngine()
//	if err := engine.ValidateRecord(ctx, row); err != nil {
//	    return err // uniqueness probe infrastructure failure
//	}
//	if engine.HasErrors() {
//	    // engine.Errors() holds field-keyed codes
//	}
package table
