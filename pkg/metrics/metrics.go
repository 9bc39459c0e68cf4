package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Кеш запросов к бэкенду
	CacheHits          *prometheus.CounterVec
	CacheMisses        *prometheus.CounterVec
	CacheStaleRefetch  *prometheus.CounterVec
	CacheInvalidations *prometheus.CounterVec
	CacheEvictions     *prometheus.CounterVec
	CacheDedupJoins    *prometheus.CounterVec

	// База данных (автосохранение черновиков)
	DBQueryDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_hits_total",
			Help:        "Cached reads served without a backend fetch",
			ConstLabels: constLabels,
		}, []string{"entity"}),

		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_misses_total",
			Help:        "Reads that triggered a backend fetch",
			ConstLabels: constLabels,
		}, []string{"entity"}),

		CacheStaleRefetch: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_stale_refetch_total",
			Help:        "Reads that refetched because the cached entry was stale",
			ConstLabels: constLabels,
		}, []string{"entity"}),

		CacheInvalidations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_invalidations_total",
			Help:        "Cache entries invalidated after writes",
			ConstLabels: constLabels,
		}, []string{"entity"}),

		CacheEvictions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_evictions_total",
			Help:        "Cache entries removed by the GC loop",
			ConstLabels: constLabels,
		}, []string{"entity"}),

		CacheDedupJoins: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_dedup_joins_total",
			Help:        "Concurrent reads that joined an in-flight fetch",
			ConstLabels: constLabels,
		}, []string{"entity"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"}),
	}
}
