package probe

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Realistic ffprobe JSON for an MP4 with one h264 video stream and one AAC
// audio stream.
const sampleFull = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30/1",
      "avg_frame_rate": "30/1"
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 2,
      "sample_rate": "48000"
    }
  ],
  "format": {
    "filename": "/media/test/clip.mp4",
    "nb_streams": 2,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "12.500000",
    "size": "10485760"
  }
}`

// NTSC frame rate expressed as the usual 30000/1001 rational.
const sampleNTSC = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "hevc",
      "codec_type": "video",
      "width": 3840,
      "height": 2160,
      "r_frame_rate": "30000/1001"
    }
  ],
  "format": { "duration": "3600.041000" }
}`

// Audio-only file: parses fine but carries no video stream.
const sampleAudioOnly = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mp3",
      "codec_type": "audio",
      "channels": 2
    }
  ],
  "format": { "duration": "180.000000" }
}`

// Degenerate stream: ffprobe reports a video stream but cannot determine
// dimensions, rate, or container duration.
const samplePartial = `{
  "streams": [
    {
      "codec_name": "h264",
      "codec_type": "video",
      "r_frame_rate": "0/0"
    }
  ],
  "format": {}
}`

func TestParseOutputFull(t *testing.T) {
	info, err := ParseOutput("/media/test/clip.mp4", []byte(sampleFull))
	require.NoError(t, err)

	require.NotNil(t, info.Duration)
	assert.InDelta(t, 12.5, *info.Duration, 1e-9)
	require.NotNil(t, info.Width)
	assert.Equal(t, 1920, *info.Width)
	require.NotNil(t, info.Height)
	assert.Equal(t, 1080, *info.Height)
	require.NotNil(t, info.FPS)
	assert.InDelta(t, 30.0, *info.FPS, 1e-9)
	require.NotNil(t, info.Codec)
	assert.Equal(t, "h264", *info.Codec)
}

func TestParseOutputNTSCFrameRate(t *testing.T) {
	info, err := ParseOutput("x.mkv", []byte(sampleNTSC))
	require.NoError(t, err)
	require.NotNil(t, info.FPS)
	assert.InDelta(t, 29.97, *info.FPS, 0.01)
}

func TestParseOutputNoVideoStream(t *testing.T) {
	info, err := ParseOutput("song.mp3", []byte(sampleAudioOnly))
	assert.Nil(t, info)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNoVideo))

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "song.mp3", pe.Path)
}

func TestParseOutputPartialFields(t *testing.T) {
	info, err := ParseOutput("x.mp4", []byte(samplePartial))
	require.NoError(t, err)

	// Each fact is independently absent; a 0/0 rational must not fault.
	assert.Nil(t, info.Duration)
	assert.Nil(t, info.Width)
	assert.Nil(t, info.Height)
	assert.Nil(t, info.FPS)
	require.NotNil(t, info.Codec)
	assert.Equal(t, "h264", *info.Codec)
}

// A stream can carry one dimension without the other; the present one must
// survive.
const sampleWidthOnly = `{
  "streams": [
    {
      "codec_name": "h264",
      "codec_type": "video",
      "width": 640
    }
  ],
  "format": { "duration": "5.000000" }
}`

func TestParseOutputIndependentDimensions(t *testing.T) {
	info, err := ParseOutput("x.mp4", []byte(sampleWidthOnly))
	require.NoError(t, err)
	require.NotNil(t, info.Width)
	assert.Equal(t, 640, *info.Width)
	assert.Nil(t, info.Height)
}

func TestParseOutputMalformedJSON(t *testing.T) {
	info, err := ParseOutput("x.mp4", []byte("not json at all"))
	assert.Nil(t, info)
	assert.True(t, IsKind(err, KindParse))
}

func TestParseFrameRate(t *testing.T) {
	cases := []struct {
		in   string
		want float64 // NaN means "expect nil"
	}{
		{"30/1", 30},
		{"30000/1001", 29.970029970029970},
		{"24000/1001", 23.976023976023978},
		{"0/0", math.NaN()},
		{"25/0", math.NaN()},
		{"banana", math.NaN()},
		{"", math.NaN()},
		{"30", math.NaN()},
		{"a/b", math.NaN()},
	}
	for _, tc := range cases {
		got := parseFrameRate(tc.in)
		if math.IsNaN(tc.want) {
			assert.Nil(t, got, "parseFrameRate(%q)", tc.in)
			continue
		}
		require.NotNil(t, got, "parseFrameRate(%q)", tc.in)
		assert.InDelta(t, tc.want, *got, 1e-9, "parseFrameRate(%q)", tc.in)
	}
}

func TestFFprobeMissingBinary(t *testing.T) {
	p := &FFprobe{Binary: "ffprobe-does-not-exist-anywhere"}
	info, err := p.Probe(context.Background(), "whatever.mp4")
	assert.Nil(t, info)
	assert.True(t, IsKind(err, KindProcess))
}
