package chash

import "github.com/armon/go-metrics"

const metricsPrefix = "chash"

// recorder forwards table events to go-metrics. A recorder with no sink
// does nothing.
type recorder struct {
	m *metrics.Metrics
}

func (r recorder) incr(name ...string) {
	if r.m == nil {
		return
	}
	r.m.IncrCounter(append([]string{metricsPrefix}, name...), 1)
}

func (r recorder) entries(n int) {
	if r.m == nil {
		return
	}
	r.m.SetGauge([]string{metricsPrefix, "entries"}, float32(n))
}
