// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	Renders        *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	CacheLookups   *prometheus.CounterVec
	Fallbacks      *prometheus.CounterVec
	WarmJobs       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listing_studio",
			Name:      "card_renders_total",
			Help:      "Cards rendered, by template and outcome.",
		}, []string{"template", "outcome"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "listing_studio",
			Name:      "card_render_seconds",
			Help:      "Time to lay out and serialize a card.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"template"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listing_studio",
			Name:      "render_cache_lookups_total",
			Help:      "Rendered card cache lookups, by result.",
		}, []string{"result"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listing_studio",
			Name:      "copywriter_fallbacks_total",
			Help:      "AI copy requests answered with the deterministic fallback.",
		}, []string{"kind", "reason"}),
		WarmJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listing_studio",
			Name:      "preview_warm_jobs_total",
			Help:      "Background preview warm jobs, by outcome.",
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{m.Renders, m.RenderDuration, m.CacheLookups, m.Fallbacks, m.WarmJobs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordRender counts one card render. Placeholder renders share the
// "unknown" template label whatever id was requested.
func (m *Metrics) RecordRender(template string, placeholder bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "rendered"
	if placeholder {
		outcome = "placeholder"
		template = "unknown"
	}
	m.Renders.WithLabelValues(template, outcome).Inc()
	m.RenderDuration.WithLabelValues(template).Observe(d.Seconds())
}

func (m *Metrics) RecordCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) RecordFallback(kind, reason string) {
	if m == nil {
		return
	}
	m.Fallbacks.WithLabelValues(kind, reason).Inc()
}

func (m *Metrics) RecordWarm(outcome string) {
	if m == nil {
		return
	}
	m.WarmJobs.WithLabelValues(outcome).Inc()
}
