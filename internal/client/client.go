package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/Belphemur/BatchFetch/internal/config"
	"github.com/Belphemur/BatchFetch/internal/models"
)

// Client streams remote files by URL
type Client interface {
	// Get issues a GET request and returns the open, decoded response body.
	// Non-2xx responses are returned as *apperrors.ErrUnexpectedStatus.
	Get(ctx context.Context, rawURL string) (*models.RemoteFile, error)
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config, logger zerolog.Logger) Client {
	return &client{
		httpClient: NewHTTPClient(cfg, logger),
	}
}

// NewHTTPClient builds the *http.Client used for downloads.
// An empty or zero client_timeout leaves requests without a deadline.
func NewHTTPClient(cfg *config.Config, logger zerolog.Logger) *http.Client {
	var timeout time.Duration
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, downloads will not time out")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport, userAgent),
	}
}
