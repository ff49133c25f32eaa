// Package stream serves file content in bounded chunks so the front-end
// can play back or fetch large videos, including ones on network shares,
// without the whole file ever sitting in memory at once.
//
// Two access patterns are exposed and both callers rely on them:
// [Reader.ReadAll] accumulates a whole file chunk by chunk, and
// [Reader.ReadRange] answers exactly one offset-addressed read so the
// caller can page through a file itself. They share one read core.
package stream

import (
	"context"
	"io"
	"os"
	"time"
)

// Chunk is one slice of a file's bytes.
//
// Invariants: len(Data) never exceeds the requested size,
// Offset+len(Data) <= TotalSize, and IsComplete is true exactly when
// Offset+len(Data) == TotalSize. A read at or past end-of-file yields an
// empty, complete chunk rather than an error.
type Chunk struct {
	Data       []byte `json:"data"`
	Offset     uint64 `json:"offset"`
	TotalSize  uint64 `json:"total_size"`
	IsComplete bool   `json:"is_complete"`
}

// Reader performs stateless per-call chunked reads governed by a [Policy].
// Every call opens and closes its own file handle, so there is nothing to
// cancel between calls.
type Reader struct {
	Policy Policy
}

// NewReader returns a Reader with the default chunk policy.
func NewReader() *Reader {
	return &Reader{Policy: DefaultPolicy()}
}

// ReadAll reads the entire file at path and returns its content. The chunk
// size comes from the policy: network-share paths are read in smaller
// chunks with a pause between them. The context is only consulted between
// chunks; a single blocked read is not interruptible.
func (r *Reader) ReadAll(ctx context.Context, path string) ([]byte, error) {
	size, pause := r.Policy.chunkSize(path)
	if size <= 0 {
		size = DefaultLocalChunkSize
	}

	f, total, err := openSized(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, 0, total)
	var offset uint64
	for offset < total {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk, err := readChunk(f, path, offset, uint64(size), total)
		if err != nil {
			return nil, err
		}
		buf = append(buf, chunk.Data...)
		offset += uint64(len(chunk.Data))
		if chunk.IsComplete {
			break
		}
		if pause > 0 {
			select {
			case <-time.After(pause):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return buf, nil
}

// ReadRange reads up to size bytes starting at offset and returns them as
// a single Chunk. Exactly one read call is issued; the caller pages
// through a file by issuing successive ReadRange calls.
func (r *Reader) ReadRange(path string, offset, size uint64) (*Chunk, error) {
	f, total, err := openSized(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readChunk(f, path, offset, size, total)
}

// openSized opens path and stats it for the total size.
func openSized(path string) (*os.File, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &Error{Op: OpOpen, Path: path, Err: err}
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, &Error{Op: OpStat, Path: path, Err: err}
	}
	return f, uint64(fi.Size()), nil
}

// readChunk performs one seek+read against an open file. Requests at or
// past end-of-file return an empty complete chunk.
func readChunk(f *os.File, path string, offset, size, total uint64) (*Chunk, error) {
	if offset >= total {
		return &Chunk{Data: []byte{}, Offset: offset, TotalSize: total, IsComplete: true}, nil
	}
	if remaining := total - offset; size > remaining {
		size = remaining
	}

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, &Error{Op: OpSeek, Path: path, Offset: offset, Err: err}
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, &Error{Op: OpRead, Path: path, Offset: offset, Err: err}
	}
	buf = buf[:n]

	return &Chunk{
		Data:       buf,
		Offset:     offset,
		TotalSize:  total,
		IsComplete: offset+uint64(n) >= total,
	}, nil
}
