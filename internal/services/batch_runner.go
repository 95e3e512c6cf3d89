package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Belphemur/BatchFetch/internal/apperrors"
	"github.com/Belphemur/BatchFetch/internal/metrics"
	"github.com/Belphemur/BatchFetch/internal/models"
)

// BatchRunner drives a Fetcher over every entry of a URL list
type BatchRunner interface {
	// Run loads jsonFile, downloads every valid entry in order and prints the summary.
	// It returns nil when the list could not be loaded or holds no entries.
	Run(ctx context.Context, jsonFile string) *models.Summary

	// Process handles already loaded entries. Every entry is counted exactly once.
	// Once ctx is done the remaining entries are counted as failed without a fetch.
	Process(ctx context.Context, entries []interface{}) models.Summary
}

// DefaultBatchRunner implements BatchRunner sequentially
type DefaultBatchRunner struct {
	fetcher Fetcher
	folder  string
	out     io.Writer
	logger  zerolog.Logger
}

// NewBatchRunner creates a runner that downloads into folder and prints the summary to out
func NewBatchRunner(fetcher Fetcher, folder string, out io.Writer, logger zerolog.Logger) BatchRunner {
	if out == nil {
		out = io.Discard
	}
	return &DefaultBatchRunner{
		fetcher: fetcher,
		folder:  folder,
		out:     out,
		logger:  logger,
	}
}

func (r *DefaultBatchRunner) Run(ctx context.Context, jsonFile string) *models.Summary {
	entries, err := LoadURLList(jsonFile)
	if err != nil {
		r.logLoadError(jsonFile, err)
		return nil
	}

	r.logger.Debug().
		Str("file", jsonFile).
		Int("entries", len(entries)).
		Str("folder", r.folder).
		Msg("Loaded URL list")

	summary := r.Process(ctx, entries)
	metrics.LastRunTimestampSeconds.SetToCurrentTime()

	r.logger.Info().
		Int("successful", summary.Successful).
		Int("failed", summary.Failed).
		Msg("Download summary")
	if err := summary.Print(r.out); err != nil {
		r.logger.Error().Err(err).Msg("Failed to print summary")
	}

	return &summary
}

func (r *DefaultBatchRunner) Process(ctx context.Context, entries []interface{}) models.Summary {
	var summary models.Summary
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			r.cancelRemaining(&summary, len(entries)-i, err)
			break
		}
		summary.Record(r.processEntry(ctx, i, entry))
	}
	return summary
}

// cancelRemaining counts the entries left after cancellation in one step
func (r *DefaultBatchRunner) cancelRemaining(summary *models.Summary, remaining int, err error) {
	r.logger.Warn().
		Err(err).
		Int("remaining", remaining).
		Msg("Batch canceled, remaining entries counted as failed")
	metrics.DownloadsTotal.WithLabelValues(models.OutcomeCanceled.String()).Add(float64(remaining))
	for ; remaining > 0; remaining-- {
		summary.Record(models.OutcomeCanceled)
	}
}

func (r *DefaultBatchRunner) processEntry(ctx context.Context, index int, entry interface{}) models.Outcome {
	rawURL, ok := entry.(string)
	// Only the literal "http" prefix is checked: "https://" passes, "ftp://" does
	// not, and "httpfoo" reaches the fetcher, which rejects it.
	if !ok || !strings.HasPrefix(rawURL, "http") {
		metrics.DownloadsTotal.WithLabelValues(models.OutcomeSkipped.String()).Inc()
		r.logger.Warn().
			Int("index", index).
			Interface("entry", entry).
			Err(&apperrors.ErrInvalidEntry{Value: entry}).
			Msg("Skipping invalid URL")
		return models.OutcomeSkipped
	}

	if r.fetcher.Fetch(ctx, rawURL, r.folder) {
		return models.OutcomeSuccess
	}
	return models.OutcomeFailed
}

// logLoadError reports why the batch did not run
func (r *DefaultBatchRunner) logLoadError(jsonFile string, err error) {
	var (
		notFound  *apperrors.ErrInputNotFound
		malformed *apperrors.ErrMalformedInput
		shape     *apperrors.ErrInvalidShape
	)

	switch {
	case errors.As(err, &shape):
		r.logger.Info().Str("file", jsonFile).Msg("No valid URL array found in the JSON file")
		return
	case errors.As(err, &notFound):
		r.logger.Error().Str("file", jsonFile).Msg("File not found")
	case errors.As(err, &malformed):
		r.logger.Error().Str("file", jsonFile).Err(malformed.Err).Msg("Invalid JSON format")
	default:
		r.logger.Error().Str("file", jsonFile).Err(err).Msg("Error processing file")
	}
	reportError(err, map[string]string{"file": jsonFile})
}
