package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/normalhq/chatbox/server/internal/analysis/emotion"
	"github.com/normalhq/chatbox/server/internal/analysis/intensity"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	return NewRecorder(filepath.Join(t.TempDir(), "metadata.log"))
}

func TestRecordAndStats(t *testing.T) {
	rec := newTestRecorder(t)

	rec.Record(emotion.Stress, intensity.Low)
	rec.Record(emotion.Stress, intensity.Medium)
	rec.Record(emotion.Sadness, intensity.High)
	if err := rec.Sync(); err != nil {
		t.Fatalf("Sync err: %v", err)
	}

	stats, err := rec.Stats()
	if err != nil {
		t.Fatalf("Stats err: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.Emotions["stress"] != 2 {
		t.Fatalf("expected 2 stress records, got %d", stats.Emotions["stress"])
	}
	if stats.Intensities["high"] != 1 {
		t.Fatalf("expected 1 high record, got %d", stats.Intensities["high"])
	}
}

func TestStatsMissingFileIsEmpty(t *testing.T) {
	rec := NewRecorder(filepath.Join(t.TempDir(), "never-written.log"))

	stats, err := rec.Stats()
	if err != nil {
		t.Fatalf("Stats err: %v", err)
	}
	if stats.Total != 0 || len(stats.Emotions) != 0 || len(stats.Intensities) != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}

func TestStatsSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.log")
	rec := NewRecorder(path)
	rec.Record(emotion.Anxiety, intensity.Low)
	if err := rec.Sync(); err != nil {
		t.Fatalf("Sync err: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	if _, err := f.WriteString("not json at all\n{}\n"); err != nil {
		t.Fatalf("append garbage: %v", err)
	}
	f.Close()

	stats, err := rec.Stats()
	if err != nil {
		t.Fatalf("Stats err: %v", err)
	}
	if stats.Total != 1 {
		t.Fatalf("expected malformed lines skipped, total=%d", stats.Total)
	}
}

func TestRecordNeverLogsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.log")
	rec := NewRecorder(path)
	rec.Record(emotion.Unknown, intensity.Low)
	if err := rec.Sync(); err != nil {
		t.Fatalf("Sync err: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(raw)
	for _, key := range []string{"emotion", "intensity", "timestamp"} {
		if !strings.Contains(line, key) {
			t.Fatalf("record missing %q field: %s", key, line)
		}
	}
	if strings.Contains(line, "message") || strings.Contains(line, "content") {
		t.Fatalf("record carries unexpected fields: %s", line)
	}
}
