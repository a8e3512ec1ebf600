// Package parsererror defines the typed errors shared by the statement
// parser, the categorization engine, and the mapping store.
package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LineRejectedError reports a statement line dropped during field
// extraction. Dropping a line is never fatal for the batch; callers log
// the diagnostic and continue.
type LineRejectedError struct {
	Line   string
	Field  string
	Reason string
}

func (e *LineRejectedError) Error() string {
	return fmt.Sprintf("line rejected (%s: %s): %q", e.Field, e.Reason, e.Line)
}

// StoreError represents a failure to load or persist the name-category
// mapping. Unlike extraction errors this is a hard failure: a correction
// that cannot be persisted must not be silently kept in memory only.
type StoreError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to
// the expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
