// Package metrics counts session activity in a prometheus registry that is
// exported to a text file when the application exits.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "lagcalc"

// Interpolation outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeInsufficient = "insufficient"
	OutcomeDegenerate   = "degenerate"
)

// Recorder owns the registry and the session collectors.
type Recorder struct {
	registry       *prometheus.Registry
	commands       *prometheus.CounterVec
	interpolations *prometheus.CounterVec
	degree         prometheus.Histogram
	renders        *prometheus.CounterVec
}

// NewRecorder creates a Recorder with a fresh registry that also carries
// the Go runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Session commands handled, by command kind.",
		}, []string{"command"}),
		interpolations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interpolations_total",
			Help:      "Compute requests, by outcome.",
		}, []string{"outcome"}),
		degree: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "polynomial_degree",
			Help:      "Degree of successfully built interpolants.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render sink calls, by outcome.",
		}, []string{"outcome"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		r.commands,
		r.interpolations,
		r.degree,
		r.renders,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// CommandHandled counts one command of the given kind.
func (r *Recorder) CommandHandled(kind string) {
	r.commands.WithLabelValues(kind).Inc()
}

// InterpolationFinished counts a compute outcome and, on success, observes
// the polynomial degree.
func (r *Recorder) InterpolationFinished(outcome string, degree int) {
	r.interpolations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		r.degree.Observe(float64(degree))
	}
}

// RenderFinished counts one render sink call.
func (r *Recorder) RenderFinished(err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = "error"
	}
	r.renders.WithLabelValues(outcome).Inc()
}

// WriteFile writes the registry in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
