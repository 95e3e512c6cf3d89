package services

import (
	"fmt"
	"path"
	"strings"
	"sync"
	"time"
)

const fallbackFilenamePrefix = "downloaded_file_"

// filenamer derives on-disk names from URL paths
type filenamer struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func newFilenamer(now func() time.Time) *filenamer {
	if now == nil {
		now = time.Now
	}
	return &filenamer{now: now}
}

// derive returns the last segment of an escaped URL path. Trailing slashes
// and dot segments (including %2e spellings) are resolved first, so
// ".../docs/" yields "docs". When nothing is left it returns
// downloaded_file_<unixMillis><ext>.
func (n *filenamer) derive(escapedPath string) string {
	p := path.Clean("/" + decodeDotSegments(escapedPath))
	if name := path.Base(p); name != "/" {
		return name
	}
	return fmt.Sprintf("%s%d%s", fallbackFilenamePrefix, n.nextMillis(), path.Ext(p))
}

// decodeDotSegments rewrites percent-encoded "." and ".." segments to their
// literal form so path.Clean resolves them.
func decodeDotSegments(escapedPath string) string {
	if !strings.Contains(escapedPath, "%") {
		return escapedPath
	}
	segments := strings.Split(escapedPath, "/")
	for i, seg := range segments {
		switch strings.ToLower(seg) {
		case "%2e":
			segments[i] = "."
		case "%2e%2e", ".%2e", "%2e.":
			segments[i] = ".."
		}
	}
	return strings.Join(segments, "/")
}

// nextMillis never hands out the same timestamp twice
func (n *filenamer) nextMillis() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	ms := n.now().UnixMilli()
	if ms <= n.last {
		ms = n.last + 1
	}
	n.last = ms
	return ms
}
