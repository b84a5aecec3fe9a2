package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	t.Run("records counters", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := New(reg)

		m.ObserveUpstream("ok", 120*time.Millisecond)
		m.ObserveUpstream("ok", 80*time.Millisecond)
		m.ObserveUpstream("http_error", time.Millisecond)
		m.CacheHit()
		m.CacheMiss()
		m.CacheMiss()
		m.ClassificationDone("flat", "success")

		assert.Equal(t, float64(2), testutil.ToFloat64(m.upstreamRequests.WithLabelValues("ok")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.upstreamRequests.WithLabelValues("http_error")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
		assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.classifications.WithLabelValues("flat", "success")))
		assert.Equal(t, 1, testutil.CollectAndCount(m.upstreamDuration))
	})

	t.Run("nil metrics are a no-op", func(t *testing.T) {
		var m *Metrics

		assert.NotPanics(t, func() {
			m.ObserveUpstream("ok", time.Second)
			m.CacheHit()
			m.CacheMiss()
			m.ClassificationDone("hierarchical", "error")
		})
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		New(reg)

		assert.Panics(t, func() { New(reg) })
	})
}
