// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace   = "issuemigrator"
	requestsSubsystem  = "requests"
	stagesSubsystem    = "stages"
	migrationSubsystem = "migration"

	defaultPrometheusTimeoutSeconds = 60
)

type Provider interface {
	ObserveRequestDuration(service, method, handler, statusCode string, elapsed float64)
	IncreaseCacheHits(service, method, handler string)
	IncreaseCacheMisses(service, method, handler string)

	ObserveStageDuration(name string, elapsed float64)
	IncreaseStageErrors(name string)

	IncreaseMigratedItems(kind, result string)
}

type PrometheusProvider struct {
	Registry *prometheus.Registry

	requestsDuration *prometheus.HistogramVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec

	stagesDuration *prometheus.HistogramVec
	stagesErrors   *prometheus.CounterVec

	migratedItems *prometheus.CounterVec
}

func NewPrometheusProvider() *PrometheusProvider {
	provider := &PrometheusProvider{}
	provider.Registry = prometheus.NewRegistry()
	options := prometheus.ProcessCollectorOpts{
		Namespace: metricsNamespace,
	}
	provider.Registry.MustRegister(prometheus.NewProcessCollector(options))
	provider.Registry.MustRegister(prometheus.NewGoCollector())

	provider.requestsDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: requestsSubsystem,
			Name:      "duration",
			Help:      "Duration of the http requests performed against the source and destination trackers.",
		},
		[]string{"service", "method", "handler", "status_code"},
	)
	provider.Registry.MustRegister(provider.requestsDuration)

	provider.cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: requestsSubsystem,
			Name:      "cache_hits",
			Help:      "Number of cache hits for requested service, method and handler.",
		},
		[]string{"service", "method", "handler"},
	)
	provider.Registry.MustRegister(provider.cacheHits)

	provider.cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: requestsSubsystem,
			Name:      "cache_miss",
			Help:      "Number of cache misses for requested service, method and handler.",
		},
		[]string{"service", "method", "handler"},
	)
	provider.Registry.MustRegister(provider.cacheMisses)

	provider.stagesDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: stagesSubsystem,
			Name:      "duration",
			Help:      "Duration of the executed migration stages.",
		},
		[]string{"name"},
	)
	provider.Registry.MustRegister(provider.stagesDuration)

	provider.stagesErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: stagesSubsystem,
			Name:      "errors",
			Help:      "Number of failed migration stages.",
		},
		[]string{"name"},
	)
	provider.Registry.MustRegister(provider.stagesErrors)

	provider.migratedItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: migrationSubsystem,
			Name:      "items",
			Help:      "Number of migrated items by kind and result.",
		},
		[]string{"kind", "result"},
	)
	provider.Registry.MustRegister(provider.migratedItems)

	return provider
}

func (p *PrometheusProvider) ObserveRequestDuration(service, method, handler, statusCode string, elapsed float64) {
	p.requestsDuration.With(
		prometheus.Labels{"service": service, "method": method, "handler": handler, "status_code": statusCode},
	).Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseCacheHits(service, method, handler string) {
	p.cacheHits.WithLabelValues(service, method, handler).Add(1)
}

func (p *PrometheusProvider) IncreaseCacheMisses(service, method, handler string) {
	p.cacheMisses.WithLabelValues(service, method, handler).Add(1)
}

func (p *PrometheusProvider) ObserveStageDuration(name string, elapsed float64) {
	p.stagesDuration.With(prometheus.Labels{"name": name}).Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseStageErrors(name string) {
	p.stagesErrors.WithLabelValues(name).Add(1)
}

func (p *PrometheusProvider) IncreaseMigratedItems(kind, result string) {
	p.migratedItems.WithLabelValues(kind, result).Add(1)
}

func (p *PrometheusProvider) Handler() Handler {
	handler := promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{
		Timeout:           time.Duration(defaultPrometheusTimeoutSeconds) * time.Second,
		EnableOpenMetrics: true,
	})
	return Handler{
		Path:        "/metrics",
		Description: "Prometheus Metrics",
		Handler:     handler,
	}
}
