package ledgercore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes counters about contract application.
type Metrics struct {
	Applied        *prometheus.CounterVec
	Failed         *prometheus.CounterVec
	DecodeFailures prometheus.Counter
}

// NewMetrics will create and register metrics with the provided registerer.
// A nil registerer falls back to the default registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	// set default
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// prepare factory
	factory := promauto.With(registerer)

	return &Metrics{
		Applied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledgercore_contracts_applied_total",
			Help: "Total number of successfully applied contracts",
		}, []string{"instruction"}),
		Failed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledgercore_contracts_failed_total",
			Help: "Total number of contracts that failed to apply",
		}, []string{"instruction"}),
		DecodeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_decode_failures_total",
			Help: "Total number of contracts that failed to decode",
		}),
	}
}

func (m *Metrics) observe(receipt Receipt) {
	// count outcome
	if receipt.Success {
		m.Applied.WithLabelValues(receipt.Instruction).Inc()
	} else {
		m.Failed.WithLabelValues(receipt.Instruction).Inc()
	}
}
