package dispatcher

import (
	"sync"
	"time"
)

// Metrics collects dispatcher statistics: how many query sessions ran
// to completion, how many were abandoned to supersession, and how long
// completed sessions took.
type Metrics struct {
	mu sync.RWMutex

	queriesStarted   uint64
	queriesFinished  uint64
	queriesAbandoned uint64
	updatesApplied   uint64

	totalDuration time.Duration
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordQueryStart records that a Query command began a new session.
func (m *Metrics) RecordQueryStart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queriesStarted++
}

// RecordQueryFinish records that a session ran to completion and emitted
// a result after taking duration.
func (m *Metrics) RecordQueryFinish(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queriesFinished++
	m.totalDuration += duration
}

// RecordQueryAbandoned records that a session was superseded before it
// could emit a result.
func (m *Metrics) RecordQueryAbandoned() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queriesAbandoned++
}

// RecordUpdate records an applied frecency Update.
func (m *Metrics) RecordUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updatesApplied++
}

// MetricsSnapshot is a point-in-time copy of the dispatcher's counters.
type MetricsSnapshot struct {
	QueriesStarted   uint64
	QueriesFinished  uint64
	QueriesAbandoned uint64
	UpdatesApplied   uint64
	TotalDuration    time.Duration
	AverageDuration  time.Duration
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		QueriesStarted:   m.queriesStarted,
		QueriesFinished:  m.queriesFinished,
		QueriesAbandoned: m.queriesAbandoned,
		UpdatesApplied:   m.updatesApplied,
		TotalDuration:    m.totalDuration,
	}
	if m.queriesFinished > 0 {
		s.AverageDuration = m.totalDuration / time.Duration(m.queriesFinished)
	}
	return s
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queriesStarted = 0
	m.queriesFinished = 0
	m.queriesAbandoned = 0
	m.updatesApplied = 0
	m.totalDuration = 0
}
