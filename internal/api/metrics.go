package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	parseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodsense_parse_total",
			Help: "Parse requests by parser and outcome.",
		},
		[]string{"parser", "outcome"},
	)

	parseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodsense_parse_duration_seconds",
			Help:    "Parse latency by parser.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"parser"},
	)

	matchedItems = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "foodsense_matched_items_total",
			Help: "Total order lines produced by parsing.",
		},
	)
)

func init() {
	prometheus.MustRegister(parseTotal, parseDuration, matchedItems)
}

func observeParse(parser, outcome string, elapsed time.Duration, lines int) {
	parseTotal.WithLabelValues(parser, outcome).Inc()
	parseDuration.WithLabelValues(parser).Observe(elapsed.Seconds())
	matchedItems.Add(float64(lines))
}
