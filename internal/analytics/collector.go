// Package analytics collects per-query statistics for the search server.
package analytics

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const maxEventsToKeep = 1000 // Keep only recent events to prevent unbounded growth

// Event is one recorded query.
type Event struct {
	QueryID   string
	Query     string
	Hits      int
	Took      time.Duration
	Timestamp time.Time
}

// Snapshot is a point-in-time view of collected statistics.
type Snapshot struct {
	TotalQueries int
	TotalHits    int
	AverageTook  time.Duration
	LastEvent    Event
}

// Collector accumulates query statistics. Safe for concurrent use.
type Collector struct {
	mutex        sync.RWMutex
	events       []Event
	totalQueries int
	totalHits    int
	totalTook    time.Duration
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{events: make([]Event, 0)}
}

// TrackQuery assigns the query a fresh UUID, folds it into the running
// totals, and returns the assigned id.
func (c *Collector) TrackQuery(query string, hits int, took time.Duration) string {
	queryID := uuid.New().String()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.events = append(c.events, Event{
		QueryID:   queryID,
		Query:     query,
		Hits:      hits,
		Took:      took,
		Timestamp: time.Now(),
	})
	if len(c.events) > maxEventsToKeep {
		c.events = c.events[len(c.events)-maxEventsToKeep:]
	}

	c.totalQueries++
	c.totalHits += hits
	c.totalTook += took
	return queryID
}

// Snapshot returns the running totals and the most recent event.
func (c *Collector) Snapshot() Snapshot {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	snapshot := Snapshot{
		TotalQueries: c.totalQueries,
		TotalHits:    c.totalHits,
	}
	if c.totalQueries > 0 {
		snapshot.AverageTook = c.totalTook / time.Duration(c.totalQueries)
		snapshot.LastEvent = c.events[len(c.events)-1]
	}
	return snapshot
}

// Events returns a copy of the retained events, oldest first.
func (c *Collector) Events() []Event {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}
