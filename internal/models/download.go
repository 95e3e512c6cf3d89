package models

import "io"

// RemoteFile is an open response body ready to be streamed to disk
type RemoteFile struct {
	Body        io.ReadCloser // Decoded response body; the caller must close it
	ContentType string        // Content-Type header as sent by the server
}

// DownloadResult describes a file that was fully written to disk
type DownloadResult struct {
	URL         string // Source URL as given in the list
	Filename    string // Derived file name (no directory)
	Path        string // Folder joined with Filename
	Bytes       int64  // Number of bytes written
	ContentType string // MIME type reported by the server
}
