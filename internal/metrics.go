package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wximg_messages_received_total",
			Help: "Total messages received from the SDK",
		},
		[]string{"type"},
	)

	DispatchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wximg_dispatch_outcomes_total",
			Help: "Image messages by dispatch outcome",
		},
		[]string{"outcome"}, // "stored", "duplicate", "failed", "skipped"
	)

	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wximg_save_duration_seconds",
			Help:    "Time spent persisting one image, retries included",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	ConnectAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wximg_connect_attempts_total",
			Help: "Total SDK connection attempts",
		},
	)

	Reconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wximg_reconnects_total",
			Help: "Total reconnections after a lost session",
		},
	)

	ReceiveRestarts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wximg_receive_restarts_total",
			Help: "Times message push was re-enabled after repeated receive failures",
		},
	)
)
