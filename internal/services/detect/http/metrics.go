package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordlang_stream_connections",
			Help: "Open detect stream connections",
		},
	)

	streamMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordlang_stream_messages_total",
			Help: "Stream messages by direction",
		},
		[]string{"direction"},
	)
)
