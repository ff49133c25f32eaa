package probe

import "context"

// MediaInfo holds the facts extracted from the first video stream of a
// probed file plus the container-level duration. Every field is optional:
// ffprobe omits what it cannot determine, and each field is absent
// independently (a file can report a codec but no parseable frame rate).
type MediaInfo struct {
	Duration *float64 // Container duration in seconds.
	Width    *int     // Pixels; nil when the stream omits it.
	Height   *int     // Pixels; nil when the stream omits it.
	FPS      *float64 // Real frame rate; nil for a 0-denominator rational.
	Codec    *string  // Codec name as reported, e.g. "h264".
}

// Prober inspects one media file. Implementations return failures as values
// (an *Error) so a caller can skip the file and continue; the crawler is
// tested against a fake implementation of this interface.
type Prober interface {
	Probe(ctx context.Context, path string) (*MediaInfo, error)
}
