package stream

import "fmt"

// Op names the file operation that failed inside a read.
type Op string

const (
	OpOpen Op = "open"
	OpStat Op = "stat"
	OpSeek Op = "seek"
	OpRead Op = "read"
)

// Error reports a failed bulk or range read with enough context for a
// human-readable message: which operation, on which file, at which offset.
type Error struct {
	Op     Op
	Path   string
	Offset uint64 // Meaningful for seek/read failures only.
	Err    error
}

func (e *Error) Error() string {
	if e.Op == OpSeek || e.Op == OpRead {
		return fmt.Sprintf("%s %q at offset %d: %v", e.Op, e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
