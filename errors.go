package xer

import (
	"errors"
	"fmt"
)

// Format violations. Each is wrapped in a FormatError carrying the offending
// line number.
var (
	// ErrMissingName reports a %T line with no table name after the tag.
	ErrMissingName = errors.New("table start has no name")
	// ErrMissingHeader reports a %T line not followed by a %F line.
	ErrMissingHeader = errors.New("table start is not followed by a header")
	// ErrOrphanRow reports a %R line outside any table, such as a file that
	// opens mid-table.
	ErrOrphanRow = errors.New("row appears outside a table")
)

// FormatError describes malformed input at a specific line. It unwraps to
// one of the sentinel format violations for errors.Is checks.
type FormatError struct {
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
