package histsync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics recorded by a Synchronizer.
// All methods are nil-safe so an unconfigured synchronizer pays nothing.
type Metrics struct {
	pushes         prometheus.Counter
	replaces       prometheus.Counter
	pops           prometheus.Counter
	suppressed     *prometheus.CounterVec
	unhandledJumps prometheus.Counter
	desyncs        prometheus.Counter
}

// NewMetrics registers the synchronizer metrics with the given registerer.
// A nil registerer uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		pushes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "navsync",
			Name:      "history_pushes_total",
			Help:      "History entries pushed by the outbound handler",
		}),
		replaces: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "navsync",
			Name:      "history_replaces_total",
			Help:      "History entries replaced (inbound resync and outbound)",
		}),
		pops: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "navsync",
			Name:      "history_pops_total",
			Help:      "History entries popped via relative moves",
		}),
		suppressed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navsync",
			Name:      "suppressed_events_total",
			Help:      "Self-triggered events swallowed by feedback suppression",
		}, []string{"source"}),
		unhandledJumps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "navsync",
			Name:      "unhandled_jumps_total",
			Help:      "Back/forward jumps of more than one entry (no correction)",
		}),
		desyncs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "navsync",
			Name:      "desyncs_total",
			Help:      "Forward navigations whose URL failed to parse",
		}),
	}
}

func (m *Metrics) recordPushes(n int) {
	if m != nil {
		m.pushes.Add(float64(n))
	}
}

func (m *Metrics) recordReplace() {
	if m != nil {
		m.replaces.Inc()
	}
}

func (m *Metrics) recordPops(n int) {
	if m != nil {
		m.pops.Add(float64(n))
	}
}

func (m *Metrics) recordSuppressed(source string) {
	if m != nil {
		m.suppressed.WithLabelValues(source).Inc()
	}
}

func (m *Metrics) recordUnhandledJump() {
	if m != nil {
		m.unhandledJumps.Inc()
	}
}

func (m *Metrics) recordDesync() {
	if m != nil {
		m.desyncs.Inc()
	}
}
