package models

import (
	"bytes"
	"testing"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeSuccess, "success"},
		{OutcomeFailed, "error"},
		{OutcomeSkipped, "skipped"},
		{OutcomeCanceled, "canceled"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSummary_Record(t *testing.T) {
	var s Summary
	s.Record(OutcomeSuccess)
	s.Record(OutcomeFailed)
	s.Record(OutcomeSkipped)
	s.Record(OutcomeSuccess)
	s.Record(OutcomeCanceled)

	if s.Successful != 2 {
		t.Errorf("Successful = %d, want 2", s.Successful)
	}
	if s.Failed != 3 {
		t.Errorf("Failed = %d, want 3", s.Failed)
	}
	if s.Total() != 5 {
		t.Errorf("Total() = %d, want 5", s.Total())
	}
}

func TestSummary_Print(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{Successful: 1, Failed: 2}

	if err := s.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	expected := "\nDownload Summary:\nSuccessful downloads: 1\nFailed downloads: 2\n"
	if buf.String() != expected {
		t.Errorf("Print wrote %q, want %q", buf.String(), expected)
	}
}
