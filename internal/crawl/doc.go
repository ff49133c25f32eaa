// Package crawl discovers video files under a directory tree and builds
// one gallery-ready metadata record per file by combining filesystem
// attributes with prober output.
//
// The crawl is deliberately best-effort: a corrupt file, a vanished entry,
// or a permission-denied subdirectory produces a logged diagnostic and a
// shorter result, never a failed crawl. Callers that need to know what was
// skipped watch the log; the result sequence only ever contains fully
// probed files.
package crawl
