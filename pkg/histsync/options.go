package histsync

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/navsync-dev/navsync/pkg/linking"
	"github.com/navsync-dev/navsync/pkg/navstate"
)

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the synchronizer's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOptions sets the initial linking options.
func WithOptions(opts linking.Options) Option {
	return func(s *Synchronizer) {
		s.linking.store(opts)
	}
}

// WithContainer sets the navigation container up front. Equivalent to
// calling SetContainer before Start.
func WithContainer(c navstate.Container) Option {
	return func(s *Synchronizer) {
		s.container = c
	}
}

// WithMetrics attaches Prometheus metrics. A nil value disables recording.
func WithMetrics(m *Metrics) Option {
	return func(s *Synchronizer) {
		s.metrics = m
	}
}

// WithTracer attaches an OpenTelemetry tracer. Each inbound and outbound
// handler invocation becomes a span.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Synchronizer) {
		s.tracer = tracer
	}
}
