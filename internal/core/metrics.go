package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	distributionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loopdrop_distributions_created_total",
			Help: "Distributions created, by type",
		},
		[]string{"type"},
	)

	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loopdrop_distribution_transitions_total",
			Help: "Committed distribution status transitions",
		},
		[]string{"from", "to"},
	)
)
