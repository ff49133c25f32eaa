// Package config holds runtime configuration: defaults, CLI flag
// registration, and validation. Defaults match the behavior the gallery
// front-end was built against.
package config

import (
	"fmt"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [Default] and then
// mutated by flag parsing before being passed (by pointer) to the packages
// that need it.
type Config struct {
	// Crawl settings.
	Extensions    []string // Recognized video extensions, without dots.
	FFprobeBinary string   // Default: "ffprobe" (looked up on PATH).

	// Chunked read settings.
	LocalChunkSize   int64         // Default: 1 MiB.
	NetworkChunkSize int64         // Default: 64 KiB.
	NetworkPause     time.Duration // Pause between chunks on network paths.
	NetworkPrefixes  []string      // Path prefixes treated as network shares.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional append-mode log file.
}

// Default returns a Config with all defaults. Used as the base before CLI
// flag overrides are applied.
func Default() Config {
	return Config{
		Extensions:       []string{"mp4", "avi", "mov", "mkv", "webm", "flv", "wmv", "m4v"},
		FFprobeBinary:    "ffprobe",
		LocalChunkSize:   1 << 20,
		NetworkChunkSize: 64 << 10,
		NetworkPause:     50 * time.Millisecond,
		NetworkPrefixes:  []string{`\\`, "//"},
		ColorMode:        ColorAuto,
	}
}

// Validate checks field consistency. Call after flag parsing.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extension list must not be empty")
	}
	for _, e := range c.Extensions {
		if e == "" || strings.ContainsAny(e, "./\\") {
			return fmt.Errorf("invalid extension %q: use bare names like mp4", e)
		}
	}
	if c.FFprobeBinary == "" {
		return fmt.Errorf("ffprobe binary must not be empty")
	}
	if c.LocalChunkSize <= 0 || c.NetworkChunkSize <= 0 {
		return fmt.Errorf("chunk sizes must be positive (local=%d network=%d)",
			c.LocalChunkSize, c.NetworkChunkSize)
	}
	if c.NetworkPause < 0 {
		return fmt.Errorf("network pause must not be negative")
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (auto|always|never)", c.ColorMode)
	}
	return nil
}

// ExtensionSet returns the extensions as a lowercase lookup set keyed with
// leading dots, the shape the crawler consumes.
func (c *Config) ExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.Extensions))
	for _, e := range c.Extensions {
		set["."+strings.ToLower(e)] = true
	}
	return set
}
