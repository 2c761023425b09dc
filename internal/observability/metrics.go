package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce    sync.Once
	operationsTotal *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the portal core.
func RegisterMetrics() {
	registerOnce.Do(func() {
		operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_operations_total",
			Help: "Total number of portal core operations, by component and outcome.",
		}, []string{"component", "operation", "outcome"})

		prometheus.MustRegister(operationsTotal)
	})
}

// Operations exposes the counter for portal core operations.
func Operations() *prometheus.CounterVec {
	RegisterMetrics()
	return operationsTotal
}
