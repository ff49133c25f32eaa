package stream

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemp creates a file of n pseudo-random-ish bytes and returns its path.
func writeTemp(t *testing.T, n int) (string, []byte) {
	t.Helper()
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, data
}

func TestReadRangeFullFile(t *testing.T) {
	path, data := writeTemp(t, 500)
	r := NewReader()

	chunk, err := r.ReadRange(path, 0, 1024)
	require.NoError(t, err)
	assert.Equal(t, data, chunk.Data)
	assert.Equal(t, uint64(0), chunk.Offset)
	assert.Equal(t, uint64(500), chunk.TotalSize)
	assert.True(t, chunk.IsComplete)
}

func TestReadRangePaging(t *testing.T) {
	path, data := writeTemp(t, 1000)
	r := NewReader()

	var got []byte
	var offset uint64
	for {
		chunk, err := r.ReadRange(path, offset, 256)
		require.NoError(t, err)
		assert.LessOrEqual(t, chunk.Offset+uint64(len(chunk.Data)), chunk.TotalSize)
		got = append(got, chunk.Data...)
		offset += uint64(len(chunk.Data))
		if chunk.IsComplete {
			break
		}
	}
	assert.Equal(t, data, got)
}

func TestReadRangeAtEOF(t *testing.T) {
	path, _ := writeTemp(t, 100)
	r := NewReader()

	chunk, err := r.ReadRange(path, 100, 64)
	require.NoError(t, err)
	assert.Empty(t, chunk.Data)
	assert.True(t, chunk.IsComplete)
	assert.Equal(t, uint64(100), chunk.TotalSize)

	// Past EOF behaves the same.
	chunk, err = r.ReadRange(path, 5000, 64)
	require.NoError(t, err)
	assert.Empty(t, chunk.Data)
	assert.True(t, chunk.IsComplete)
}

func TestReadRangeCapsAtRemaining(t *testing.T) {
	path, data := writeTemp(t, 300)
	r := NewReader()

	chunk, err := r.ReadRange(path, 250, 1024)
	require.NoError(t, err)
	assert.Equal(t, data[250:], chunk.Data)
	assert.Len(t, chunk.Data, 50)
	assert.True(t, chunk.IsComplete)
}

func TestReadRangeMidFileNotComplete(t *testing.T) {
	path, data := writeTemp(t, 300)
	r := NewReader()

	chunk, err := r.ReadRange(path, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, data[100:200], chunk.Data)
	assert.False(t, chunk.IsComplete)
}

func TestReadRangeOpenError(t *testing.T) {
	r := NewReader()
	chunk, err := r.ReadRange(filepath.Join(t.TempDir(), "missing.bin"), 0, 64)
	assert.Nil(t, chunk)

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, OpOpen, se.Op)
	assert.Contains(t, se.Error(), "missing.bin")
}

func TestReadAllLocal(t *testing.T) {
	// Chunk size smaller than the file forces multiple iterations.
	path, data := writeTemp(t, 10_000)
	r := &Reader{Policy: Policy{LocalChunkSize: 1024}}

	got, err := r.ReadAll(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, got), "content mismatch")
	assert.Len(t, got, 10_000)
}

func TestReadAllNetworkBranch(t *testing.T) {
	// A policy that treats the temp dir as a network share exercises the
	// small-chunk/pause branch against a local file.
	path, data := writeTemp(t, 2_000)
	r := &Reader{Policy: Policy{
		NetworkPrefixes:  []string{filepath.Dir(path)},
		LocalChunkSize:   1 << 20,
		NetworkChunkSize: 512,
		NetworkPause:     time.Millisecond,
	}}
	require.True(t, r.Policy.IsNetworkPath(path))

	got, err := r.ReadAll(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadAllEmptyFile(t *testing.T) {
	path, _ := writeTemp(t, 0)
	r := NewReader()

	got, err := r.ReadAll(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadAllCancelBetweenChunks(t *testing.T) {
	path, _ := writeTemp(t, 4_000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Reader{Policy: Policy{
		NetworkPrefixes:  []string{filepath.Dir(path)},
		NetworkChunkSize: 256,
		NetworkPause:     10 * time.Millisecond,
	}}
	_, err := r.ReadAll(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadAllLocalCancelBetweenChunks(t *testing.T) {
	// The local branch has no inter-chunk pause but must still observe
	// cancellation between chunks.
	path, _ := writeTemp(t, 4_000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Reader{Policy: Policy{LocalChunkSize: 256}}
	_, err := r.ReadAll(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsNetworkPath(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.IsNetworkPath(`\\nas\share\movie.mkv`))
	assert.True(t, p.IsNetworkPath("//nas/share/movie.mkv"))
	assert.False(t, p.IsNetworkPath("/home/user/movie.mkv"))
	assert.False(t, p.IsNetworkPath("C:/videos/movie.mkv"))
}
