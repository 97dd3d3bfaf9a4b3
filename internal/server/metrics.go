package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contentReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receptbanken_content_reloads_total",
		Help: "Number of catalog reloads, including the initial load.",
	})
	contentItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "receptbanken_content_items",
		Help: "Items currently loaded per content type.",
	}, []string{"type"})
	searchQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receptbanken_search_queries_total",
		Help: "Autocomplete queries served.",
	})
)
