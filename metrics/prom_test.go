package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, family string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != family {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			return m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			return m.GetGauge().GetValue()
		case m.GetHistogram() != nil:
			return m.GetHistogram().GetSampleSum()
		}
	}
	t.Fatalf("metric family %q not found", family)
	return 0
}

func TestPrometheusProvider_Counter(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg, "taskpool")

	c := p.Counter("tasks_submitted_total", WithDescription("Tasks accepted."))
	c.Add(3)
	c.Add(-1) // negative increments are dropped, not panics
	c.Add(2)

	require.Equal(t, 5.0, gatherValue(t, reg, "taskpool_tasks_submitted_total"))
}

func TestPrometheusProvider_Gauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg, "taskpool")

	g := p.UpDownCounter("queue_depth", WithDescription("Current queue depth."))
	g.Add(4)
	g.Add(-3)

	require.Equal(t, 1.0, gatherValue(t, reg, "taskpool_queue_depth"))
}

func TestPrometheusProvider_Histogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg, "taskpool")

	h := p.Histogram("task_duration_seconds", WithUnit("seconds"))
	h.Record(0.25)
	h.Record(0.75)

	require.Equal(t, 1.0, gatherValue(t, reg, "taskpool_task_duration_seconds"))
}

func TestPrometheusProvider_ReusesInstrumentsByName(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg, "taskpool")

	p.Counter("hits").Add(1)
	p.Counter("hits").Add(1)
	require.Equal(t, 2.0, gatherValue(t, reg, "taskpool_hits"))
}

func TestPrometheusProvider_SharedRegistryAcrossProviders(t *testing.T) {
	reg := prometheus.NewRegistry()
	p1 := NewPrometheusProvider(reg, "taskpool")
	p2 := NewPrometheusProvider(reg, "taskpool")

	// The second provider resolves the already-registered collector instead
	// of failing, so both record into the same series.
	p1.Counter("hits").Add(1)
	p2.Counter("hits").Add(1)
	require.Equal(t, 2.0, gatherValue(t, reg, "taskpool_hits"))
}

func TestPrometheusProvider_NilRegistererFallsBack(t *testing.T) {
	p := NewPrometheusProvider(nil, "taskpool_default")
	require.NotNil(t, p)
	// Instrument creation must not panic against the default registerer.
	p.UpDownCounter("fallback_gauge").Add(1)
}
