// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by status code and crawler flag.",
		}, []string{"code", "bot"})

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency, by status code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"code"})

	URLParseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_url_parse_total",
			Help: "Product request paths parsed, by url format.",
		}, []string{"format"})

	CarouselItemsSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "carousel_items_skipped_total",
			Help: "List tokens whose base product was not found in the catalog.",
		})

	CarouselItemsFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "carousel_items_failed_total",
			Help: "List items dropped because building them failed.",
		})

	CatalogCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Products served from the in-memory catalog cache.",
		})

	CatalogCacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Products fetched from the catalog database.",
		})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		URLParseTotal,
		CarouselItemsSkippedTotal,
		CarouselItemsFailedTotal,
		CatalogCacheHitsTotal,
		CatalogCacheMissesTotal,
	)
}
