// Package probe wraps a single ffprobe invocation per media file and
// parses its JSON output into the optional video facts the crawler needs:
// duration, resolution, frame rate, and codec name.
//
// The package deliberately exposes a one-method [Prober] interface so the
// crawler can be tested with a fake; only [FFprobe] shells out. All
// failures are returned as *[Error] values classified by [Kind] — a corrupt
// file must never abort a whole crawl.
package probe
