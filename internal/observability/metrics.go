package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics counts facade resolutions per span kind.
type Metrics struct {
	mu sync.Mutex

	requestTotal atomic.Int64
	noMatch      atomic.Int64
	violations   atomic.Int64
	cacheHits    atomic.Int64

	kinds map[string]*KindMetrics
}

// KindMetrics are the counters of one span kind.
type KindMetrics struct {
	resolved      atomic.Int64
	failed        atomic.Int64
	totalDuration atomic.Int64 // microseconds
}

// NewMetrics creates a metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{kinds: make(map[string]*KindMetrics)}
}

// RecordResolve records one resolution attempt of a kind.
func (m *Metrics) RecordResolve(kind string, ok bool, d time.Duration) {
	m.requestTotal.Add(1)
	km := m.kind(kind)
	if ok {
		km.resolved.Add(1)
	} else {
		km.failed.Add(1)
		m.noMatch.Add(1)
	}
	km.totalDuration.Add(d.Microseconds())
}

// RecordViolation records an internal invariant violation.
func (m *Metrics) RecordViolation() {
	m.violations.Add(1)
}

// RecordCacheHit records a result served from the cache.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

func (m *Metrics) kind(kind string) *KindMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	km, ok := m.kinds[kind]
	if !ok {
		km = &KindMetrics{}
		m.kinds[kind] = km
	}
	return km
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.requestTotal.Store(0)
	m.noMatch.Store(0)
	m.violations.Store(0)
	m.cacheHits.Store(0)

	m.mu.Lock()
	m.kinds = make(map[string]*KindMetrics)
	m.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the counters.
func (m *Metrics) Snapshot() *MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	kinds := make(map[string]KindSnapshot, len(m.kinds))
	for name, km := range m.kinds {
		s := KindSnapshot{
			Resolved: km.resolved.Load(),
			Failed:   km.failed.Load(),
		}
		if n := s.Resolved + s.Failed; n > 0 {
			s.AverageDuration = time.Duration(km.totalDuration.Load()/n) * time.Microsecond
		}
		kinds[name] = s
	}
	return &MetricsSnapshot{
		RequestTotal: m.requestTotal.Load(),
		NoMatch:      m.noMatch.Load(),
		Violations:   m.violations.Load(),
		CacheHits:    m.cacheHits.Load(),
		Kinds:        kinds,
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	RequestTotal int64
	NoMatch      int64
	Violations   int64
	CacheHits    int64
	Kinds        map[string]KindSnapshot
}

// KindSnapshot is the snapshot of one kind.
type KindSnapshot struct {
	Resolved        int64
	Failed          int64
	AverageDuration time.Duration
}

// MatchRate returns the share of attempts that resolved, 0-100.
func (s *MetricsSnapshot) MatchRate() float64 {
	if s.RequestTotal == 0 {
		return 100.0
	}
	return float64(s.RequestTotal-s.NoMatch) / float64(s.RequestTotal) * 100.0
}
