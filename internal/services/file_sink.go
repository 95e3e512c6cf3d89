package services

import (
	"io"
	"os"
)

// FileSink is the filesystem surface used by the downloader
type FileSink interface {
	// MkdirAll creates dir and any missing parents; an existing dir is not an error.
	MkdirAll(dir string) error
	// Create opens path for writing, truncating any existing file.
	Create(path string) (io.WriteCloser, error)
	// Remove deletes path.
	Remove(path string) error
}

// OSFileSink writes to the local filesystem
type OSFileSink struct{}

func (OSFileSink) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

func (OSFileSink) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (OSFileSink) Remove(path string) error {
	return os.Remove(path)
}
