package services

import (
	"context"

	"github.com/Belphemur/BatchFetch/internal/models"
)

// Fetcher downloads one URL into a folder and reports whether it succeeded
type Fetcher interface {
	Fetch(ctx context.Context, rawURL, folder string) bool
}

// FileDownloader defines the interface for downloading a URL to a local file
type FileDownloader interface {
	Fetcher

	// Download streams rawURL into folder and returns what was written.
	// Every failure is an *apperrors.ErrTransferFailed.
	Download(ctx context.Context, rawURL, folder string) (*models.DownloadResult, error)
}
