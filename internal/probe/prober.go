package probe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"
)

// FFprobe runs the ffprobe binary once per file with JSON output. The zero
// value is ready to use; Binary overrides the executable name for tests or
// nonstandard installs.
type FFprobe struct {
	Binary string
}

// DefaultBinary is the executable looked up on PATH when Binary is empty.
const DefaultBinary = "ffprobe"

// Probe runs a single ffprobe JSON call against path and extracts the
// video facts. One invocation, no retries: transient tool failures surface
// as an *Error and the caller decides whether to skip.
func (f *FFprobe) Probe(ctx context.Context, path string) (*MediaInfo, error) {
	bin := f.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	cmd := exec.CommandContext(ctx, bin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		kind := KindProcess
		if _, ok := err.(*exec.ExitError); ok {
			kind = KindExit
		}
		return nil, &Error{Kind: kind, Path: path, Err: err}
	}

	return ParseOutput(path, out)
}

// ParseOutput converts raw ffprobe JSON into a MediaInfo. Exported so tests
// can exercise the parsing without a real ffprobe binary.
func ParseOutput(path string, data []byte) (*MediaInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: KindParse, Path: path, Err: err}
	}

	var video *ffprobeStream
	for i := range raw.Streams {
		if raw.Streams[i].CodecType == "video" {
			video = &raw.Streams[i]
			break
		}
	}
	if video == nil {
		return nil, &Error{Kind: KindNoVideo, Path: path}
	}

	// Each fact is independently optional: a stream may report one
	// dimension without the other.
	info := &MediaInfo{
		Duration: parseDuration(raw.Format.Duration),
		Width:    video.Width,
		Height:   video.Height,
		FPS:      parseFrameRate(video.RFrameRate),
	}
	if video.CodecName != "" {
		codec := video.CodecName
		info.Codec = &codec
	}
	return info, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	Width      *int   `json:"width"`
	Height     *int   `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
}

// parseDuration parses ffprobe's string-encoded decimal seconds, returning
// nil when the field is missing or unparsable.
func parseDuration(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &d
}

// parseFrameRate parses a "num/den" rational such as "30000/1001". A zero
// denominator means ffprobe could not determine the rate; that yields nil
// rather than a division fault.
func parseFrameRate(s string) *float64 {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return nil
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return nil
	}
	fps := n / d
	return &fps
}
