package table

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports every required column absent from a table, not
// just the first one encountered.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns: %s", strings.Join(e.Missing, ", "))
}

// WriteError indicates the destination could not be written (locked file,
// restricted folder). No partial output exists when it is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
