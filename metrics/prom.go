package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusProvider implements Provider on top of a Prometheus registerer.
// Counters map to prometheus.Counter, up/down counters to prometheus.Gauge,
// and histograms to prometheus.Histogram with the default buckets.
// Instruments are registered once per name and reused afterwards; a name
// already registered on the supplied registerer (e.g., two pools sharing one
// registry) resolves to the existing collector instead of failing.
type PrometheusProvider struct {
	reg       prometheus.Registerer
	namespace string

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// NewPrometheusProvider constructs a provider registering instruments on reg
// under the given namespace. A nil reg falls back to the default registerer.
func NewPrometheusProvider(reg prometheus.Registerer, namespace string) *PrometheusProvider {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &PrometheusProvider{
		reg:        reg,
		namespace:  namespace,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

// Counter returns a monotonic counter registered under the provider namespace.
func (p *PrometheusProvider) Counter(name string, opts ...InstrumentOption) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.counters[name]; ok {
		return promCounter{c}
	}
	cfg := applyOptions(opts)
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: p.namespace,
		Name:      name,
		Help:      cfg.Description,
	})
	if err := p.reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			c = are.ExistingCollector.(prometheus.Counter)
		}
		// other registration errors leave an unregistered but usable counter
	}
	p.counters[name] = c
	return promCounter{c}
}

// UpDownCounter returns a gauge registered under the provider namespace.
func (p *PrometheusProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if g, ok := p.gauges[name]; ok {
		return promGauge{g}
	}
	cfg := applyOptions(opts)
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: p.namespace,
		Name:      name,
		Help:      cfg.Description,
	})
	if err := p.reg.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			g = are.ExistingCollector.(prometheus.Gauge)
		}
	}
	p.gauges[name] = g
	return promGauge{g}
}

// Histogram returns a histogram registered under the provider namespace.
func (p *PrometheusProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.histograms[name]; ok {
		return promHistogram{h}
	}
	cfg := applyOptions(opts)
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: p.namespace,
		Name:      name,
		Help:      cfg.Description,
	})
	if err := p.reg.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			h = are.ExistingCollector.(prometheus.Histogram)
		}
	}
	p.histograms[name] = h
	return promHistogram{h}
}

type promCounter struct{ c prometheus.Counter }

func (pc promCounter) Add(n int64) {
	if n < 0 {
		return // prometheus counters reject negative increments
	}
	pc.c.Add(float64(n))
}

type promGauge struct{ g prometheus.Gauge }

func (pg promGauge) Add(n int64) { pg.g.Add(float64(n)) }

type promHistogram struct{ h prometheus.Histogram }

func (ph promHistogram) Record(v float64) { ph.h.Observe(v) }
