package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Belphemur/BatchFetch/internal/apperrors"
	"github.com/Belphemur/BatchFetch/internal/models"
)

// Get downloads rawURL as a stream. The body is left open for the caller.
func (c *client) Get(ctx context.Context, rawURL string) (*models.RemoteFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, &apperrors.ErrUnexpectedStatus{URL: rawURL, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &models.RemoteFile{
		Body:        resp.Body,
		ContentType: contentType,
	}, nil
}
