package crawl

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/EldynC/ShadowCrawler/internal/metadata"
	"github.com/EldynC/ShadowCrawler/internal/probe"
)

// DefaultExtensions is the recognized video extension set (lowercase, with
// leading dot). Matching is case-insensitive and the set is closed: nothing
// else is ever treated as a video.
var DefaultExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".flv":  true,
	".wmv":  true,
	".m4v":  true,
}

// ProgressFunc is called once per candidate file as it is processed.
// done counts processed candidates (including skipped ones), total is the
// number discovered.
type ProgressFunc func(path string, done, total int)

// Crawler walks a directory tree and assembles one metadata record per
// probeable video file. The prober is injected so crawl logic is testable
// without ffprobe on PATH.
type Crawler struct {
	Prober     probe.Prober
	Extensions map[string]bool // nil means DefaultExtensions.
	Log        *logrus.Entry   // nil means the logrus standard logger.
	Progress   ProgressFunc    // Optional.
}

// New returns a Crawler using p and the default extension set.
func New(p probe.Prober) *Crawler {
	return &Crawler{Prober: p}
}

// Crawl walks root and returns a record for every video file that could be
// statted and probed. The crawl is best-effort: unreadable entries and
// unprobeable files are logged and skipped, never aborting the walk. Only a
// root that cannot be traversed at all returns an error. Output order
// follows the traversal and carries no guarantee.
//
// Indexing a single subdirectory is this same operation with a narrower
// root.
func (c *Crawler) Crawl(ctx context.Context, root string) ([]metadata.Video, error) {
	candidates, err := c.discover(root)
	if err != nil {
		return nil, err
	}

	videos := make([]metadata.Video, 0, len(candidates))
	for i, path := range candidates {
		if c.Progress != nil {
			c.Progress(path, i+1, len(candidates))
		}
		rec, ok := c.processFile(ctx, path)
		if ok {
			videos = append(videos, rec)
		}
	}
	return videos, nil
}

// discover collects every regular file under root whose lowercased
// extension is recognized. Walk errors below the root are logged and
// swallowed so one unreadable subdirectory cannot sink the crawl.
func (c *Crawler) discover(root string) ([]string, error) {
	exts := c.Extensions
	if exts == nil {
		exts = DefaultExtensions
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			c.log().WithError(err).Warnf("skipping unreadable entry %s", path)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if exts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// processFile turns one candidate path into a record. Any failure —
// vanished file, unreadable attributes, probe error — logs a diagnostic
// and reports ok=false so the crawl moves on.
func (c *Crawler) processFile(ctx context.Context, path string) (metadata.Video, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		c.log().WithError(err).Warnf("skipping %s: cannot read attributes", path)
		return metadata.Video{}, false
	}

	info, err := c.Prober.Probe(ctx, path)
	if err != nil {
		c.log().WithError(err).Warnf("skipping %s: probe failed", path)
		return metadata.Video{}, false
	}

	folderName, fileName := metadata.SplitPath(path)
	creation, modified := metadata.Timestamps(fi)

	return metadata.Video{
		ID:           metadata.ID(folderName, fileName),
		FolderName:   folderName,
		FullPath:     path,
		FileName:     fileName,
		FileSize:     uint64(fi.Size()),
		CreationDate: creation,
		ModifiedDate: modified,
		Duration:     info.Duration,
		Width:        info.Width,
		Height:       info.Height,
		FPS:          info.FPS,
		Codec:        info.Codec,
	}, true
}

func (c *Crawler) log() *logrus.Entry {
	if c.Log != nil {
		return c.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
