package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	attemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "filevault_client",
			Name:      "http_attempts_total",
			Help:      "Network attempts issued, including retries.",
		},
		[]string{"method"},
	)

	retriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "filevault_client",
			Name:      "http_retries_total",
			Help:      "Attempts that were retries of a failed attempt.",
		},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "filevault_client",
			Name:      "http_failures_total",
			Help:      "Requests that surfaced an error after exhausting retries.",
		},
		[]string{"code"},
	)
)
