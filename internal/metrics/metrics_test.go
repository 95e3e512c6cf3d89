package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getHistogramCount(h prometheus.Histogram) uint64 {
	var m dto.Metric
	if err := h.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_DownloadsTotal(t *testing.T) {
	for _, status := range []string{"success", "error", "skipped", "canceled"} {
		t.Run(status, func(t *testing.T) {
			before := getCounterVecValue(DownloadsTotal, status)
			DownloadsTotal.WithLabelValues(status).Inc()
			after := getCounterVecValue(DownloadsTotal, status)

			if after != before+1 {
				t.Errorf("Expected %s counter to increment by 1, got diff %.0f", status, after-before)
			}
		})
	}
}

func TestMetrics_DownloadedBytesTotal(t *testing.T) {
	before := getCounterValue(DownloadedBytesTotal)
	DownloadedBytesTotal.Add(512)
	after := getCounterValue(DownloadedBytesTotal)

	if after != before+512 {
		t.Errorf("Expected bytes counter to grow by 512, got diff %.0f", after-before)
	}
}

func TestMetrics_DownloadDurationSeconds(t *testing.T) {
	before := getHistogramCount(DownloadDurationSeconds)
	DownloadDurationSeconds.Observe(0.2)
	after := getHistogramCount(DownloadDurationSeconds)

	if after != before+1 {
		t.Errorf("Expected one new observation, got diff %d", after-before)
	}
}

func TestWriteTextfile(t *testing.T) {
	DownloadsTotal.WithLabelValues("success").Inc()
	path := filepath.Join(t.TempDir(), "batchfetch.prom")

	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(content), `batchfetch_downloads_total{status="success"}`) {
		t.Errorf("Expected textfile to contain downloads counter, got:\n%s", content)
	}
}

func TestWriteTextfile_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "batchfetch.prom")

	if err := writeTextfile(path, prometheus.NewRegistry()); err == nil {
		t.Fatal("Expected error when target directory does not exist")
	}
}
