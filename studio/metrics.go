package studio

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the orchestration client
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ImagesGenerated  *prometheus.CounterVec
	CooldownsTotal   prometheus.Counter
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	QuotaRejections  *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance registered on the default registerer
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, namespace)
}

// NewMetricsWith creates a Metrics instance on the given registerer; tests
// pass a fresh registry to avoid duplicate registration
func NewMetricsWith(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = "owmstudio"
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_requests_total",
				Help:      "Total number of upstream generation calls",
			},
			[]string{"task", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_request_duration_seconds",
				Help:      "Upstream call duration in seconds",
				Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"task"},
		),
		ImagesGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "images_generated_total",
				Help:      "Total number of images successfully generated",
			},
			[]string{"task"},
		),
		CooldownsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_cooldowns_total",
				Help:      "Total number of rate-limit cooldown sleeps",
			},
		),
		CacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "annotation_cache_hits_total",
				Help:      "Total number of annotation cache hits",
			},
		),
		CacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "annotation_cache_misses_total",
				Help:      "Total number of annotation cache misses",
			},
		),
		QuotaRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quota_rejections_total",
				Help:      "Total number of batch items skipped for exhausted tenant budget",
			},
			[]string{"task"},
		),
	}
}

// observeCall records one upstream call outcome
func (c *Client) observeCall(task string, elapsed time.Duration, err error) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.RequestsTotal.WithLabelValues(task, status).Inc()
	c.metrics.RequestDuration.WithLabelValues(task).Observe(elapsed.Seconds())
}

func (c *Client) observeImage(task string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ImagesGenerated.WithLabelValues(task).Inc()
}

func (c *Client) observeCooldown() {
	if c.metrics == nil {
		return
	}
	c.metrics.CooldownsTotal.Inc()
}

func (c *Client) observeCache(hit bool) {
	if c.metrics == nil {
		return
	}
	if hit {
		c.metrics.CacheHits.Inc()
	} else {
		c.metrics.CacheMisses.Inc()
	}
}

func (c *Client) observeQuotaRejection(task string) {
	if c.metrics == nil {
		return
	}
	c.metrics.QuotaRejections.WithLabelValues(task).Inc()
}
