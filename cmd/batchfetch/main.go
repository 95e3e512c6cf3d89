package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/BatchFetch/internal/client"
	"github.com/Belphemur/BatchFetch/internal/config"
	"github.com/Belphemur/BatchFetch/internal/metrics"
	"github.com/Belphemur/BatchFetch/internal/services"
)

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Debug().
		Str("input_file", cfg.InputFile).
		Str("output_dir", cfg.OutputDir).
		Str("client_timeout", cfg.ClientTimeout).
		Bool("proxy", cfg.ProxyConnectionString != "").
		Msg("Application started with configuration")

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Sentry, continuing without error reporting")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// SIGINT/SIGTERM abort the current download; entries not yet reached are counted as failed without a request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	downloader := services.NewFileDownloader(client.NewClient(cfg, logger), services.OSFileSink{}, logger)
	runner := services.NewBatchRunner(downloader, cfg.OutputDir, os.Stdout, logger)

	logger.Info().Str("file", cfg.InputFile).Msgf("Starting download process from %s...", cfg.InputFile)
	runner.Run(ctx, cfg.InputFile)

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Error().Err(err).Str("path", cfg.Metrics.Textfile).Msg("Failed to write metrics")
		}
	}
}
