// Package metadata defines the video record handed off to the gallery
// front-end: one immutable Video per discovered file, JSON-shaped for
// direct consumption by the UI layer.
package metadata

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/djherbis/times"
)

// Video is one crawl result record. Media fields are pointers because the
// prober may return partial data: each is omitted from the JSON output
// when absent, never emitted as null.
//
// Timestamps are decimal-string milliseconds since the Unix epoch so the
// JavaScript front-end can feed them straight into Date().
type Video struct {
	ID            string   `json:"id"`
	FolderName    string   `json:"folder_name"`
	FullPath      string   `json:"full_path"`
	FileName      string   `json:"file_name"`
	FileSize      uint64   `json:"file_size"`
	CreationDate  string   `json:"creation_date"`
	ModifiedDate  string   `json:"modified_date"`
	Duration      *float64 `json:"duration,omitempty"`
	Width         *int     `json:"width,omitempty"`
	Height        *int     `json:"height,omitempty"`
	FPS           *float64 `json:"fps,omitempty"`
	Codec         *string  `json:"codec,omitempty"`
	ThumbnailPath *string  `json:"thumbnail_path,omitempty"`
}

// Unknown is the fallback for folder and file names that cannot be derived
// (e.g. the filesystem root has no parent). Records never carry an empty name.
const Unknown = "unknown"

// ID builds the record identifier from the parent folder name and the file
// name. Two files with the same name inside same-named folders under
// different parents share an identifier; callers that need global
// uniqueness must key on FullPath instead.
func ID(folderName, fileName string) string {
	return folderName + "_" + fileName
}

// SplitPath derives the immediate parent folder name and the file name from
// path, falling back to Unknown for either component that cannot be
// determined.
func SplitPath(path string) (folderName, fileName string) {
	fileName = filepath.Base(path)
	if fileName == "." || fileName == string(filepath.Separator) || fileName == "" {
		fileName = Unknown
	}
	folderName = filepath.Base(filepath.Dir(path))
	if folderName == "." || folderName == string(filepath.Separator) || folderName == "" {
		folderName = Unknown
	}
	return folderName, fileName
}

// Timestamps extracts creation and modification times from fi as
// millisecond strings. Filesystems without a birth time report the epoch
// for creation, matching the previous behavior the front-end expects.
func Timestamps(fi os.FileInfo) (creation, modified string) {
	created := time.Unix(0, 0)
	if ts := times.Get(fi); ts.HasBirthTime() {
		created = ts.BirthTime()
	}
	return formatMillis(created), formatMillis(fi.ModTime())
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
