// Package metrics exports render loop counters for Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements clock.Observer on top of its own registry
type Metrics struct {
	registry *prometheus.Registry

	frames            prometheus.Counter
	renderTime        prometheus.Histogram
	outputBytes       prometheus.Counter
	countdownLeft     prometheus.Gauge
	countdownsExpired prometheus.Counter
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		frames: factory.NewCounter(prometheus.CounterOpts{
			Name: "tclock_frames_total",
			Help: "The total number of frames drawn",
		}),
		renderTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tclock_frame_render_seconds",
			Help:    "How long it takes to draw and flush one frame",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		outputBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "tclock_output_bytes_total",
			Help: "The total number of bytes written to the terminal by frames",
		}),
		countdownLeft: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tclock_countdown_remaining_seconds",
			Help: "Time left on the active countdown",
		}),
		countdownsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "tclock_countdowns_expired_total",
			Help: "The number of countdowns that reached zero",
		}),
	}
}

// Registry exposes the collectors' registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) FrameRendered(elapsed time.Duration, bytes int) {
	m.frames.Inc()
	m.renderTime.Observe(elapsed.Seconds())
	m.outputBytes.Add(float64(bytes))
}

func (m *Metrics) CountdownLeft(left time.Duration) {
	m.countdownLeft.Set(left.Seconds())
}

func (m *Metrics) CountdownExpired() {
	m.countdownsExpired.Inc()
}
