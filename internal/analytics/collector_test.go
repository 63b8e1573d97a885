package analytics

import (
	"testing"
	"time"
)

func TestTrackQuery(t *testing.T) {
	collector := NewCollector()

	id1 := collector.TrackQuery("cat", 2, 10*time.Microsecond)
	id2 := collector.TrackQuery("dog -cat", 0, 30*time.Microsecond)

	if id1 == "" || id2 == "" {
		t.Fatal("TrackQuery must return a non-empty query id")
	}
	if id1 == id2 {
		t.Error("query ids must be unique")
	}

	snapshot := collector.Snapshot()
	if snapshot.TotalQueries != 2 {
		t.Errorf("TotalQueries = %d, want 2", snapshot.TotalQueries)
	}
	if snapshot.TotalHits != 2 {
		t.Errorf("TotalHits = %d, want 2", snapshot.TotalHits)
	}
	if snapshot.AverageTook != 20*time.Microsecond {
		t.Errorf("AverageTook = %v, want 20µs", snapshot.AverageTook)
	}
	if snapshot.LastEvent.Query != "dog -cat" {
		t.Errorf("LastEvent.Query = %q, want %q", snapshot.LastEvent.Query, "dog -cat")
	}
	if snapshot.LastEvent.QueryID != id2 {
		t.Error("LastEvent must carry the id returned by TrackQuery")
	}
}

func TestEmptySnapshot(t *testing.T) {
	collector := NewCollector()

	snapshot := collector.Snapshot()
	if snapshot.TotalQueries != 0 || snapshot.TotalHits != 0 || snapshot.AverageTook != 0 {
		t.Errorf("empty collector snapshot = %+v, want zeroes", snapshot)
	}
}

func TestEventRetentionIsBounded(t *testing.T) {
	collector := NewCollector()
	for i := 0; i < maxEventsToKeep+50; i++ {
		collector.TrackQuery("cat", 1, time.Microsecond)
	}

	events := collector.Events()
	if len(events) != maxEventsToKeep {
		t.Errorf("retained %d events, want %d", len(events), maxEventsToKeep)
	}

	snapshot := collector.Snapshot()
	if snapshot.TotalQueries != maxEventsToKeep+50 {
		t.Errorf("TotalQueries = %d, want %d (totals outlive trimmed events)", snapshot.TotalQueries, maxEventsToKeep+50)
	}
}
