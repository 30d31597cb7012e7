package validate

import (
	"fmt"
	"strings"
)

// Code identifies one validation failure kind. The shipped table
// implementation uses the constants below; custom tables may record any
// code, including semantic validator names such as "date".
type Code string

const (
	CodeType    Code = "type"
	CodeLength  Code = "length"
	CodeNotNull Code = "notnull"
	CodeUnique  Code = "unique"
)

// ErrorStack accumulates validation failures for one validation pass,
// keyed by field name with codes kept in the order they were recorded.
// It is owned by a single engine instance and never shared across records.
type ErrorStack struct {
	order []string
	codes map[string][]Code
}

// NewErrorStack returns an empty stack.
func NewErrorStack() *ErrorStack {
	return &ErrorStack{codes: make(map[string][]Code)}
}

// Add records a failure code for field.
func (s *ErrorStack) Add(field string, code Code) {
	if _, seen := s.codes[field]; !seen {
		s.order = append(s.order, field)
	}
	s.codes[field] = append(s.codes[field], code)
}

// Get returns the codes recorded for field in recording order.
func (s *ErrorStack) Get(field string) []Code {
	return s.codes[field]
}

// Has reports whether any code was recorded for field.
func (s *ErrorStack) Has(field string) bool {
	return len(s.codes[field]) > 0
}

// Fields returns the failed field names in first-failure order.
func (s *ErrorStack) Fields() []string {
	return s.order
}

// Count returns the total number of recorded codes across all fields.
func (s *ErrorStack) Count() int {
	n := 0
	for _, codes := range s.codes {
		n += len(codes)
	}
	return n
}

// IsEmpty reports whether the stack holds no failures.
func (s *ErrorStack) IsEmpty() bool {
	return len(s.order) == 0
}

// Reset discards all recorded failures, preparing the stack for the next
// validation pass.
func (s *ErrorStack) Reset() {
	s.order = nil
	s.codes = make(map[string][]Code)
}

// Error satisfies the error interface so a non-empty stack can be bubbled
// up through error returns by callers that prefer that style.
func (s *ErrorStack) Error() string {
	if s.IsEmpty() {
		return "validation failed"
	}
	parts := make([]string, 0, len(s.order))
	for _, field := range s.order {
		codes := make([]string, len(s.codes[field]))
		for i, c := range s.codes[field] {
			codes[i] = string(c)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(codes, ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
