package sheets

import "fmt"

// ReadError means a source sheet was unreachable. It aborts the stage that
// needed the sheet; nothing is written for that stage.
type ReadError struct {
	Sheet string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read sheet %q: %v", e.Sheet, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ColumnNotFoundError means an expected header is missing from a sheet.
// Cell addressing is derived from header positions, so a write stage that
// hits this cannot proceed safely and aborts entirely.
type ColumnNotFoundError struct {
	Sheet  string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q has no column %q", e.Sheet, e.Column)
}
