package monitoring

import (
	"fmt"
	"testing"
	"time"
)

func TestSnapshot_Averages(t *testing.T) {
	m := New()
	m.RecordRequest(10*time.Millisecond, false)
	m.RecordRequest(30*time.Millisecond, true)

	stats := m.Snapshot()
	if stats.RequestCount != 2 {
		t.Errorf("requestCount = %d, want 2", stats.RequestCount)
	}
	if stats.ErrorCount != 1 {
		t.Errorf("errorCount = %d, want 1", stats.ErrorCount)
	}
	if stats.AverageResponseMs != 20 {
		t.Errorf("averageResponseMs = %f, want 20", stats.AverageResponseMs)
	}
	if stats.ErrorRate != 0.5 {
		t.Errorf("errorRate = %f, want 0.5", stats.ErrorRate)
	}
}

func TestDurationBufferBounded(t *testing.T) {
	m := New()
	for i := 0; i < maxDurationSamples+200; i++ {
		m.RecordRequest(time.Millisecond, false)
	}

	m.mu.Lock()
	n := len(m.durations)
	m.mu.Unlock()
	if n != maxDurationSamples {
		t.Errorf("durations length = %d, want %d", n, maxDurationSamples)
	}

	// Le compteur total continue de refléter toutes les requêtes
	if got := m.Snapshot().RequestCount; got != int64(maxDurationSamples+200) {
		t.Errorf("requestCount = %d, want %d", got, maxDurationSamples+200)
	}
}

func TestErrorBufferKeepsMostRecent(t *testing.T) {
	m := New()
	for i := 0; i < maxErrorEntries+10; i++ {
		m.RecordError(ErrorEntry{
			Timestamp: time.Now(),
			Path:      fmt.Sprintf("/err/%d", i),
			Method:    "GET",
			Message:   "HTTP 500",
		})
	}

	entries := m.Errors()
	if len(entries) != maxErrorEntries {
		t.Fatalf("errors length = %d, want %d", len(entries), maxErrorEntries)
	}
	if entries[len(entries)-1].Path != fmt.Sprintf("/err/%d", maxErrorEntries+9) {
		t.Errorf("last entry = %s, want most recent", entries[len(entries)-1].Path)
	}
	if entries[0].Path != "/err/10" {
		t.Errorf("first entry = %s, want oldest kept", entries[0].Path)
	}
}
