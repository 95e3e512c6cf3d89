package models

import (
	"fmt"
	"io"
)

// Summary tallies the outcomes of one batch run
type Summary struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Record counts one outcome. Skipped and canceled entries count as failed.
func (s *Summary) Record(o Outcome) {
	if o.Succeeded() {
		s.Successful++
		return
	}
	s.Failed++
}

// Total returns the number of entries recorded so far
func (s Summary) Total() int {
	return s.Successful + s.Failed
}

// Print writes the human-readable summary block
func (s Summary) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\nDownload Summary:\nSuccessful downloads: %d\nFailed downloads: %d\n", s.Successful, s.Failed)
	return err
}
