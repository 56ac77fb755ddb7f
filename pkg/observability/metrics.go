package observability

import (
	"github.com/aretw0/palintape/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates engine counters. Register it once per process and
// attach its Hooks to every engine whose activity should be counted.
type Metrics struct {
	runsTotal  *prometheus.CounterVec
	stepsTotal prometheus.Counter
	runSteps   prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "palintape_runs_total",
			Help: "Completed runs by verdict.",
		}, []string{"verdict"}),
		stepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "palintape_steps_total",
			Help: "Executed machine steps across all runs.",
		}),
		runSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Name: "palintape_run_steps",
			Help: "Steps needed per completed run.",
			// The machine is O(n²) in input length; buckets cover inputs
			// up to a few dozen characters.
			Buckets: prometheus.ExponentialBuckets(4, 2, 10),
		}),
	}
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(domain.StepRecord) {
			m.stepsTotal.Inc()
		},
		OnHalt: func(res domain.RunResult) {
			m.runsTotal.WithLabelValues(string(res.Verdict)).Inc()
			m.runSteps.Observe(float64(res.Steps))
		},
	}
}
