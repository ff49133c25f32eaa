package probe

import (
	"errors"
	"fmt"
)

// Kind classifies why a probe failed. The crawler only ever skips the file,
// but the kind is kept so diagnostics (and tests) can tell an unrunnable
// ffprobe apart from a corrupt input.
type Kind int

const (
	// KindProcess: the ffprobe process could not be started at all.
	KindProcess Kind = iota
	// KindExit: ffprobe ran but exited with a non-zero status.
	KindExit
	// KindParse: ffprobe output was not well-formed JSON.
	KindParse
	// KindNoVideo: the file parsed but contains no video stream.
	KindNoVideo
)

func (k Kind) String() string {
	switch k {
	case KindProcess:
		return "process"
	case KindExit:
		return "exit"
	case KindParse:
		return "parse"
	case KindNoVideo:
		return "no-video-stream"
	}
	return "unknown"
}

// Error is a probe failure for a single file. It is always returned as a
// value; probing never panics, so a caller can skip-and-continue.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("probe %q: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("probe %q: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a probe [Error] of the given kind.
func IsKind(err error, k Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == k
}
