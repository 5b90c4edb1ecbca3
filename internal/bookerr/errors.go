// Package bookerr defines the error taxonomy of the bookkeeping core.
// All failures are local and reported through return values; nothing in
// the core aborts the program.
package bookerr

import "fmt"

// ParseError represents a malformed date or amount. Callers typically
// skip the affected entry or filter rather than aborting.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a rejected mutation, such as a pending
// entry carrying a settlement date.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// ReferenceError represents a referential-integrity rejection: deleting
// an account, bank or category that ledger entries still reference.
type ReferenceError struct {
	Entity string
	Key    string
	Count  int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s '%s' is referenced by %d ledger entries and cannot be removed",
		e.Entity, e.Key, e.Count)
}

// PersistenceError represents a failed load or save of the data file.
// Loads recover to an empty state; saves surface the error to the caller.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
