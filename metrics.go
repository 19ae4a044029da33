package authclient

import "sync/atomic"

// MetricID identifies one engine counter.
type MetricID uint16

const (
	// MetricLoginSuccess counts logins that stored a token and user.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts rejected or failed login attempts.
	MetricLoginFailure
	// MetricRegisterSuccess counts accepted registrations.
	MetricRegisterSuccess
	// MetricRegisterFailure counts rejected registrations.
	MetricRegisterFailure
	// MetricLogout counts session teardowns, explicit and forced.
	MetricLogout
	// MetricRefreshSuccess counts refreshes that stored a new token.
	MetricRefreshSuccess
	// MetricRefreshFailure counts refreshes that failed and tore the
	// session down.
	MetricRefreshFailure
	// MetricRefreshCoalesced counts refresh calls that joined an
	// in-flight refresh instead of issuing their own.
	MetricRefreshCoalesced
	// MetricRestoreSuccess counts startup restores that produced an
	// authenticated session.
	MetricRestoreSuccess
	// MetricRestoreFailure counts startup restores that ended
	// unauthenticated.
	MetricRestoreFailure
	// MetricSessionInvalidated counts sessions torn down by validation.
	MetricSessionInvalidated
	// MetricUnauthorizedIntercepted counts 401 responses intercepted by
	// the pipeline.
	MetricUnauthorizedIntercepted
	// MetricVerificationSuccess counts successful email verifications.
	MetricVerificationSuccess
	// MetricVerificationFailure counts failed email verifications.
	MetricVerificationFailure
	metricIDCount
)

// Metrics is a fixed set of atomic counters. A disabled or nil Metrics
// accepts increments and reports zeros.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return m.counters[id].Load()
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}

	s := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, int(metricIDCount)),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = m.counters[id].Load()
	}
	return s
}
