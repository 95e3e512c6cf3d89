package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Belphemur/BatchFetch/internal/apperrors"
)

// LoadURLList reads a JSON file holding an array of URL entries.
// Elements are returned undecoded beyond generic JSON values; validating them
// is left to the caller.
func LoadURLList(path string) ([]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &apperrors.ErrInputNotFound{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &apperrors.ErrMalformedInput{Path: path, Err: err}
	}

	entries, ok := parsed.([]interface{})
	if !ok || len(entries) == 0 {
		return nil, &apperrors.ErrInvalidShape{Path: path}
	}

	return entries, nil
}
