// Package metrics exports solve statistics as Prometheus collectors.
//
// Collectors registers everything on a caller-supplied Registerer and
// implements tsp.Recorder, so it plugs straight into tsp.Options.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tspmtz/tsp"
)

const namespace = "tspmtz"

// Collectors holds the solve metrics.
type Collectors struct {
	solves      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cities      prometheus.Histogram
	modelVars   prometheus.Gauge
	modelRows   prometheus.Gauge
	backendVars prometheus.Gauge
}

var _ tsp.Recorder = (*Collectors)(nil)

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solves by outcome.",
		}, []string{"outcome", "formulation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a solve, encoding included.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"outcome"}),
		cities: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "instance_cities",
			Help:      "Number of cities per solved instance.",
			Buckets:   []float64{2, 4, 8, 12, 16, 24, 32, 48, 64},
		}),
		modelVars: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_model_variables",
			Help:      "Model variables (edges and ranks) of the last solve.",
		}),
		modelRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_model_constraints",
			Help:      "Model constraints of the last solve.",
		}),
		backendVars: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_backend_variables",
			Help:      "Backend variables of the last solve, auxiliaries included.",
		}),
	}

	for _, col := range []prometheus.Collector{c.solves, c.duration, c.cities, c.modelVars, c.modelRows, c.backendVars} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordSolve implements tsp.Recorder.
func (c *Collectors) RecordSolve(st tsp.Stats, err error) {
	outcome := tsp.Outcome(err)
	c.solves.WithLabelValues(outcome, st.Formulation.String()).Inc()
	c.duration.WithLabelValues(outcome).Observe(st.Elapsed.Seconds())
	if st.N == 0 {
		return
	}
	c.cities.Observe(float64(st.N))
	if st.Vars > 0 {
		c.modelVars.Set(float64(st.Vars))
		c.modelRows.Set(float64(st.Constraints))
		c.backendVars.Set(float64(st.BackendVars))
	}
}
