package bfs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for searchesTotal.
const (
	outcomeReachable   = "reachable"
	outcomeUnreachable = "unreachable"
	outcomeError       = "error"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hillclimb_searches_total",
		Help: "The total number of grid searches, by outcome",
	}, []string{"outcome"})
	searchVisitedCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hillclimb_search_visited_cells",
		Help:    "The number of cells placed on the frontier per completed search",
		Buckets: prometheus.ExponentialBuckets(16, 4, 8),
	})
)

func observe(res Result, err error) {
	switch {
	case err != nil:
		searchesTotal.WithLabelValues(outcomeError).Inc()
		return
	case res.Reachable():
		searchesTotal.WithLabelValues(outcomeReachable).Inc()
	default:
		searchesTotal.WithLabelValues(outcomeUnreachable).Inc()
	}
	searchVisitedCells.Observe(float64(res.Visited))
}
