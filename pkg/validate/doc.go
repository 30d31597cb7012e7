// Package validate implements field-level validation for persisted
// records: type checking, length checking and record-level orchestration
// with per-field error accumulation.
//
// # Architecture
//
// Four cooperating pieces:
//
//   - IsValidType – pure predicate dispatching on the declared semantic
//     type of a field. Deferred expressions and nil always pass; temporal
//     types delegate to the named validators registry.
//   - ValidateLength – pure predicate computing an effective length per
//     type family (serialized bytes for structured values, digit counts
//     for decimals, raw bytes for blobs, code points otherwise) and
//     comparing it against the declared maximum.
//   - ErrorStack – ordered, field-keyed accumulation of failure codes for
//     a single validation pass. Also satisfies the error interface.
//   - Engine – walks a record's modified (or, for new records, all)
//     fields, delegates to the owning table's field hook, then asks the
//     table to check uniqueness constraints. One engine owns one stack.
//
// The Record and Table interfaces decouple the engine from any concrete
// metadata implementation; pkg/table ships one, but the engine accepts
// anything satisfying the contracts.
//
// # Usage
//
//	engine := validate.NewEngine(validate.WithLogger(logger))
//	if err := engine.ValidateRecord(ctx, rec); err != nil {
//	    // infrastructure failure from the uniqueness probe
//	}
//	if engine.HasErrors() {
//	    for _, field := range engine.Errors().Fields() {
//	        codes := engine.Errors().Get(field)
//	        // report codes to the user
//	    }
//	}
//
// # Error Handling
//
// Validation failures are never raised: they are recorded on the stack so
// a caller can inspect every failure for a record in one pass. Only
// configuration errors (an unresolvable validator name) and uniqueness
// probe infrastructure failures surface as Go errors.
package validate
