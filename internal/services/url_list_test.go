package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Belphemur/BatchFetch/internal/apperrors"
	"github.com/Belphemur/BatchFetch/internal/testutil"
)

func TestLoadURLList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantLen int
		wantErr error
	}{
		{"array of urls", `["http://example.com/a.png", "https://example.com/b"]`, 2, nil},
		{"mixed values", `["http://example.com/a", 42, null, {"u": 1}, true]`, 5, nil},
		{"malformed", `{not valid json`, 0, &apperrors.ErrMalformedInput{}},
		{"empty file", ``, 0, &apperrors.ErrMalformedInput{}},
		{"trailing garbage", `["http://example.com/a"] x`, 0, &apperrors.ErrMalformedInput{}},
		{"empty array", `[]`, 0, &apperrors.ErrInvalidShape{}},
		{"object", `{"urls": ["http://example.com/a"]}`, 0, &apperrors.ErrInvalidShape{}},
		{"string", `"http://example.com/a"`, 0, &apperrors.ErrInvalidShape{}},
		{"null", `null`, 0, &apperrors.ErrInvalidShape{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := testutil.WriteFile(t, "urls.json", tt.content)

			entries, err := LoadURLList(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %T, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(entries) != tt.wantLen {
				t.Errorf("len(entries) = %d, want %d", len(entries), tt.wantLen)
			}
		})
	}
}

func TestLoadURLList_PreservesOrder(t *testing.T) {
	t.Parallel()
	path := testutil.WriteFile(t, "urls.json", `["http://a", "ftp://b", "http://c"]`)

	entries, err := LoadURLList(path)
	if err != nil {
		t.Fatalf("LoadURLList: %v", err)
	}

	want := []string{"http://a", "ftp://b", "http://c"}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entries[%d] = %v, want %q", i, entries[i], w)
		}
	}
}

func TestLoadURLList_NotFound(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := LoadURLList(path)
	var notFound *apperrors.ErrInputNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected *ErrInputNotFound, got %v", err)
	}
	if notFound.Path != path {
		t.Errorf("Path = %q, want %q", notFound.Path, path)
	}
}

func TestLoadURLList_ReadError(t *testing.T) {
	t.Parallel()
	// Reading a directory fails with something other than "not exist"
	dir := t.TempDir()

	_, err := LoadURLList(dir)
	if err == nil {
		t.Fatal("Expected error when path is a directory")
	}
	if errors.Is(err, &apperrors.ErrInputNotFound{}) || errors.Is(err, &apperrors.ErrMalformedInput{}) {
		t.Errorf("Expected a generic read error, got %v", err)
	}
}
