package testutil

import (
	"context"
	"sync"
)

// FetchCall records the arguments of one Fetch invocation
type FetchCall struct {
	URL    string
	Folder string
}

// RecordingFetcher is an in-memory Fetcher that records every call and
// returns scripted outcomes. URLs missing from Outcomes return Default.
// This is a test helper and should not be used in production code.
type RecordingFetcher struct {
	Outcomes map[string]bool
	Default  bool
	OnFetch  func(rawURL string) // optional, runs after the call is recorded

	mu    sync.Mutex
	calls []FetchCall
}

// NewRecordingFetcher creates a fetcher returning the given outcome per URL
func NewRecordingFetcher(outcomes map[string]bool) *RecordingFetcher {
	return &RecordingFetcher{Outcomes: outcomes}
}

// Fetch records the call and returns the scripted outcome
func (f *RecordingFetcher) Fetch(_ context.Context, rawURL, folder string) bool {
	f.mu.Lock()
	f.calls = append(f.calls, FetchCall{URL: rawURL, Folder: folder})
	ok, found := f.Outcomes[rawURL]
	if !found {
		ok = f.Default
	}
	hook := f.OnFetch
	f.mu.Unlock()

	if hook != nil {
		hook(rawURL)
	}
	return ok
}

// Calls returns a copy of the recorded calls in order
func (f *RecordingFetcher) Calls() []FetchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FetchCall(nil), f.calls...)
}

// CallCount returns how many times Fetch was invoked
func (f *RecordingFetcher) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
