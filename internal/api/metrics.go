package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	matches      prometheus.Histogram
	findDuration prometheus.Histogram
	cacheHits    prometheus.Counter
	vocabSize    prometheus.Gauge
}

// NewMetrics builds collectors on their own registry so several handlers can
// coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rudefinder_find_requests_total",
			Help: "Find requests by outcome",
		}, []string{"outcome"}),
		matches: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rudefinder_matches_per_request",
			Help:    "Number of flagged words matched per find request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		findDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rudefinder_find_duration_seconds",
			Help:    "Time spent searching the vocabulary",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "rudefinder_cache_hits_total",
			Help: "Find requests answered from the match cache",
		}),
		vocabSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rudefinder_vocabulary_words",
			Help: "Number of flagged words currently loaded",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) SetVocabularySize(n int) {
	m.vocabSize.Set(float64(n))
}
