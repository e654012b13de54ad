package state

import (
	"github.com/prometheus/client_golang/prometheus"
)

const ledgerMetricsNamespace = "token_ledger"

var metricLedgerOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: ledgerMetricsNamespace,
		Name:      "operations_total",
		Help:      "Ledger operations count by operation and outcome",
	},
	[]string{"operation", "outcome"},
)

func init() {
	prometheus.MustRegister(metricLedgerOperations)
}
