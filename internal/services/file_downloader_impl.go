package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Belphemur/BatchFetch/internal/apperrors"
	"github.com/Belphemur/BatchFetch/internal/client"
	"github.com/Belphemur/BatchFetch/internal/metrics"
	"github.com/Belphemur/BatchFetch/internal/models"
)

// DefaultFileDownloader implements FileDownloader on top of a streaming client and a FileSink
type DefaultFileDownloader struct {
	client client.Client
	sink   FileSink
	names  *filenamer
	logger zerolog.Logger
}

// NewFileDownloader creates a downloader writing through sink. A nil sink uses the local filesystem.
func NewFileDownloader(c client.Client, sink FileSink, logger zerolog.Logger) FileDownloader {
	if sink == nil {
		sink = OSFileSink{}
	}
	return &DefaultFileDownloader{
		client: c,
		sink:   sink,
		names:  newFilenamer(time.Now),
		logger: logger,
	}
}

// Fetch downloads rawURL into folder, logs the outcome and records metrics.
// It returns true only once the file has been fully written and closed.
func (d *DefaultFileDownloader) Fetch(ctx context.Context, rawURL, folder string) bool {
	start := time.Now()

	result, err := d.Download(ctx, rawURL, folder)
	metrics.DownloadDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DownloadsTotal.WithLabelValues(models.OutcomeFailed.String()).Inc()

		stage := "unknown"
		var transferErr *apperrors.ErrTransferFailed
		if errors.As(err, &transferErr) {
			stage = transferErr.Stage
		}
		d.logger.Error().
			Err(err).
			Str("url", rawURL).
			Str("stage", stage).
			Msg("Error downloading")
		reportError(err, map[string]string{"url": rawURL, "stage": stage})
		return false
	}

	metrics.DownloadsTotal.WithLabelValues(models.OutcomeSuccess.String()).Inc()
	metrics.DownloadedBytesTotal.Add(float64(result.Bytes))

	d.logger.Info().
		Str("url", result.URL).
		Str("filename", result.Filename).
		Str("path", result.Path).
		Int64("bytes", result.Bytes).
		Str("contentType", result.ContentType).
		Msg("Successfully downloaded")
	return true
}

// Download ensures folder exists, derives the target name from the URL and
// streams the response body into it, overwriting any existing file.
func (d *DefaultFileDownloader) Download(ctx context.Context, rawURL, folder string) (*models.DownloadResult, error) {
	if err := d.sink.MkdirAll(folder); err != nil {
		return nil, apperrors.NewTransferError(rawURL, apperrors.StageFolder, fmt.Errorf("failed to create folder %s: %w", folder, err))
	}

	u, err := parseDownloadURL(rawURL)
	if err != nil {
		return nil, apperrors.NewTransferError(rawURL, apperrors.StageURL, err)
	}

	filename := d.names.derive(u.path)
	target := filepath.Join(folder, filename)

	d.logger.Debug().
		Str("url", rawURL).
		Str("path", target).
		Msg("Downloading file")

	remote, err := d.client.Get(ctx, u.fetch)
	if err != nil {
		return nil, apperrors.NewTransferError(rawURL, apperrors.StageRequest, err)
	}
	defer remote.Body.Close()

	written, err := d.writeFile(target, remote.Body)
	if err != nil {
		return nil, apperrors.NewTransferError(rawURL, apperrors.StageWrite, err)
	}

	return &models.DownloadResult{
		URL:         rawURL,
		Filename:    filename,
		Path:        target,
		Bytes:       written,
		ContentType: remote.ContentType,
	}, nil
}

// writeFile copies body into target. A partially written file is removed.
func (d *DefaultFileDownloader) writeFile(target string, body io.Reader) (int64, error) {
	out, err := d.sink.Create(target)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, copyErr := io.Copy(out, body)
	closeErr := out.Close()
	if copyErr == nil && closeErr == nil {
		return written, nil
	}

	if rmErr := d.sink.Remove(target); rmErr != nil {
		d.logger.Warn().Err(rmErr).Str("path", target).Msg("Failed to remove partial file")
	}
	if copyErr != nil {
		return written, fmt.Errorf("failed to write file: %w", copyErr)
	}
	return written, fmt.Errorf("failed to close file: %w", closeErr)
}

// downloadURL is a list entry prepared for net/url
type downloadURL struct {
	fetch string // entry with stray '%' escaped; this is what gets requested
	path  string // escaped path as written in the entry
}

// parseDownloadURL rejects anything that is not an absolute URL. A '%' that
// does not start a valid escape is accepted and sent as %25.
func parseDownloadURL(rawURL string) (*downloadURL, error) {
	fetch := escapeStrayPercent(rawURL)
	u, err := url.Parse(fetch)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("invalid URL: %q has no scheme", rawURL)
	}

	p := u.EscapedPath()
	if fetch != rawURL {
		p = unescapeStrayPercent(p)
	}
	return &downloadURL{fetch: fetch, path: p}, nil
}

// escapeStrayPercent turns every '%' not followed by two hex digits into %25
func escapeStrayPercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !isEscape(s, i) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// unescapeStrayPercent reverts escapeStrayPercent on a path
func unescapeStrayPercent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(s[i:], "%25") && !hexPairAt(s, i+3) {
			b.WriteByte('%')
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// isEscape reports whether s[i] is '%' followed by two hex digits
func isEscape(s string, i int) bool {
	return s[i] == '%' && hexPairAt(s, i+1)
}

func hexPairAt(s string, i int) bool {
	return i+1 < len(s) && isHex(s[i]) && isHex(s[i+1])
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
