package stream

import (
	"strings"
	"time"
)

// Policy decides chunk sizing for bulk reads. It is passed into [Reader]
// explicitly so tests can exercise the network branch against local files;
// there is no ambient global.
type Policy struct {
	// NetworkPrefixes mark a path as living on a network share. Matching
	// paths get the smaller chunk size and an inter-chunk pause so a bulk
	// read does not saturate a slow link.
	NetworkPrefixes []string

	LocalChunkSize   int64
	NetworkChunkSize int64
	NetworkPause     time.Duration
}

// Sizes chosen for the bulk-read path: large sequential reads locally,
// conservative reads over SMB-style shares.
const (
	DefaultLocalChunkSize   = 1 << 20 // 1 MiB
	DefaultNetworkChunkSize = 64 << 10
	DefaultNetworkPause     = 50 * time.Millisecond
)

// DefaultPolicy recognizes UNC-style paths (and their forward-slash form)
// as network shares.
func DefaultPolicy() Policy {
	return Policy{
		NetworkPrefixes:  []string{`\\`, "//"},
		LocalChunkSize:   DefaultLocalChunkSize,
		NetworkChunkSize: DefaultNetworkChunkSize,
		NetworkPause:     DefaultNetworkPause,
	}
}

// IsNetworkPath reports whether path matches one of the configured
// network-share prefixes.
func (p Policy) IsNetworkPath(path string) bool {
	for _, prefix := range p.NetworkPrefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// chunkSize returns the bulk-read chunk size and pause for path.
func (p Policy) chunkSize(path string) (int64, time.Duration) {
	if p.IsNetworkPath(path) {
		return p.NetworkChunkSize, p.NetworkPause
	}
	return p.LocalChunkSize, 0
}
