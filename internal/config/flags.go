package config

import (
	"github.com/spf13/pflag"
)

// RegisterGlobal attaches the flags shared by every command to fs. The
// string behind ColorMode needs an indirection because pflag has no typed
// enum var; the caller copies it back via [ApplyColorMode].
func RegisterGlobal(fs *pflag.FlagSet, cfg *Config, colorMode *string) {
	*colorMode = string(cfg.ColorMode)
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable debug logging")
	fs.StringVar(colorMode, "color", *colorMode, "Color output: auto, always, or never")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Also append log output to this file")
}

// ApplyColorMode copies a parsed --color value into cfg. Validation of the
// value happens in [Config.Validate].
func ApplyColorMode(cfg *Config, colorMode string) {
	cfg.ColorMode = ColorMode(colorMode)
}

// RegisterCrawl attaches crawl-specific flags.
func RegisterCrawl(fs *pflag.FlagSet, cfg *Config) {
	fs.StringSliceVar(&cfg.Extensions, "extensions", cfg.Extensions,
		"Video extensions to recognize (comma separated, no dots)")
	fs.StringVar(&cfg.FFprobeBinary, "ffprobe", cfg.FFprobeBinary,
		"ffprobe executable to invoke")
}

// RegisterRead attaches chunked-read flags.
func RegisterRead(fs *pflag.FlagSet, cfg *Config) {
	fs.Int64Var(&cfg.LocalChunkSize, "local-chunk-size", cfg.LocalChunkSize,
		"Bulk read chunk size for local paths, in bytes")
	fs.Int64Var(&cfg.NetworkChunkSize, "network-chunk-size", cfg.NetworkChunkSize,
		"Bulk read chunk size for network share paths, in bytes")
	fs.DurationVar(&cfg.NetworkPause, "network-pause", cfg.NetworkPause,
		"Pause between bulk read chunks on network share paths")
	fs.StringSliceVar(&cfg.NetworkPrefixes, "network-prefix", cfg.NetworkPrefixes,
		"Path prefixes treated as network shares")
}
