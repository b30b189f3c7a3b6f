package random

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	promNamespace = "nprand"

	backendLabel  = "backend"
	functionLabel = "function"
)

var (
	drawLabels = []string{
		backendLabel,
		functionLabel,
	}

	drawCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "random_draws_total",
		Help:      "The number of generation calls routed to a backend, by function",
	}, drawLabels)
)

func countDraw(b Backend, function string) {
	drawCounter.WithLabelValues(string(b), function).Inc()
}
