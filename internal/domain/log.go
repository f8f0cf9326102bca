package domain

import (
	"sync"
	"time"
)

// LogLevel grades dashboard log entries.
type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogSuccess LogLevel = "success"
	LogWarning LogLevel = "warning"
	LogError   LogLevel = "error"
)

// LogEntry is one line of the dashboard event log.
type LogEntry struct {
	Level     LogLevel
	Message   string
	CreatedAt time.Time
}

// LogRing is a bounded, concurrency-safe event log. Once capacity is
// exceeded the oldest entries drop. It is shared between the session worker
// and the dashboard loop.
type LogRing struct {
	mu      sync.Mutex
	cap     int
	entries []LogEntry
}

// NewLogRing returns a ring holding at most capacity entries.
func NewLogRing(capacity int) *LogRing {
	if capacity < 1 {
		capacity = 1
	}
	return &LogRing{cap: capacity}
}

// Append records a new entry, evicting the oldest when full.
func (r *LogRing) Append(level LogLevel, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{Level: level, Message: message, CreatedAt: time.Now()})
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
}

// Tail returns a copy of the newest n entries, oldest first.
func (r *LogRing) Tail(n int) []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]LogEntry, n)
	copy(out, r.entries[len(r.entries)-n:])
	return out
}

// Len reports how many entries the ring currently holds.
func (r *LogRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
