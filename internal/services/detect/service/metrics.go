package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	perr "wordlang/internal/platform/errors"
	"wordlang/internal/services/detect/domain"
)

var (
	detectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordlang_detections_total",
			Help: "Detections run, by granularity and outcome",
		},
		[]string{"granularity", "status"},
	)

	detectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordlang_detection_duration_seconds",
			Help:    "Time spent segmenting and scoring one text",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"granularity"},
	)

	wordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordlang_words_total",
			Help: "Words segmented, by granularity",
		},
		[]string{"granularity"},
	)

	batchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordlang_batch_texts",
			Help:    "Texts per batch request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 9),
		},
	)
)

func observe(g domain.Granularity, start time.Time, res domain.Result, err error) {
	status := "ok"
	if err != nil {
		status = perr.CodeOf(err).String()
	}
	detectionsTotal.WithLabelValues(string(g), status).Inc()
	detectionDuration.WithLabelValues(string(g)).Observe(time.Since(start).Seconds())
	wordsTotal.WithLabelValues(string(g)).Add(float64(res.WordCount))
}
