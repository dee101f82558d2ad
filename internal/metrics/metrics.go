// Package metrics holds the domain counters exported on /metrics next to
// the HTTP metrics collected by middleware.Metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Block mutation ops
const (
	OpUpsert  = "upsert"
	OpReorder = "reorder"
)

// Sitemap sources
const (
	SourceCache = "cache"
	SourceBuild = "build"
)

var (
	blockMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_block_mutations_total",
			Help: "Total number of saved block mutations",
		},
		[]string{"op"},
	)

	parseRecoveriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "content_parse_recoveries_total",
			Help: "Stored block collections that failed to decode and were replaced by an empty one",
		},
	)

	sitemapGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitemap_generations_total",
			Help: "Sitemap documents served, by source",
		},
		[]string{"source"},
	)
)

// BlockMutation counts a saved upsert or reorder
func BlockMutation(op string) {
	blockMutationsTotal.WithLabelValues(op).Inc()
}

// ParseRecovery counts a corrupt body that was reset
func ParseRecovery() {
	parseRecoveriesTotal.Inc()
}

// SitemapServed counts a sitemap response by where it came from
func SitemapServed(source string) {
	sitemapGenerationsTotal.WithLabelValues(source).Inc()
}
