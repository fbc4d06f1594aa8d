package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// ScoreMetrics adds round-submission counters to OperationMetrics.
type ScoreMetrics interface {
	OperationMetrics
	RecordRoundSubmitted(ctx context.Context, totalQuestions, correct int)
	RecordScoreMismatch(ctx context.Context)
}

type prometheusScoreMetrics struct {
	OperationMetrics
	rounds     prometheus.Counter
	answers    *prometheus.CounterVec
	mismatches prometheus.Counter
}

// NewPrometheusScoreMetrics registers the score collectors on reg and
// delegates operation metrics to base.
func NewPrometheusScoreMetrics(reg prometheus.Registerer, namespace string, base OperationMetrics) (ScoreMetrics, error) {
	m := &prometheusScoreMetrics{
		OperationMetrics: base,
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "rounds_submitted_total",
			Help:      "Number of quiz rounds recorded.",
		}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "answers_total",
			Help:      "Number of answers recorded, by outcome.",
		}, []string{"outcome"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "claimed_score_mismatch_total",
			Help:      "Number of submissions whose claimed score disagreed with the recomputed score.",
		}),
	}

	for _, c := range []prometheus.Collector{m.rounds, m.answers, m.mismatches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *prometheusScoreMetrics) RecordRoundSubmitted(_ context.Context, totalQuestions, correct int) {
	m.rounds.Inc()
	m.answers.WithLabelValues("correct").Add(float64(correct))
	m.answers.WithLabelValues("incorrect").Add(float64(totalQuestions - correct))
}

func (m *prometheusScoreMetrics) RecordScoreMismatch(context.Context) {
	m.mismatches.Inc()
}

type noopScoreMetrics struct {
	noopMetrics
}

// NewNoopScore returns a ScoreMetrics that discards everything.
func NewNoopScore() ScoreMetrics {
	return noopScoreMetrics{}
}

func (noopScoreMetrics) RecordRoundSubmitted(context.Context, int, int) {}
func (noopScoreMetrics) RecordScoreMismatch(context.Context)            {}
