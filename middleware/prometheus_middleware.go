package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route, and status code",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_active",
			Help: "Number of active HTTP requests",
		},
		[]string{"method", "route"},
	)

	googleDailyUsage = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "google_api_daily_calls",
			Help: "Google API calls made today (UTC), read from the Redis usage counters",
		},
		[]string{"api"},
	)

	infraHealthStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "infrastructure_health_status",
			Help: "Health status of infrastructure components (1=healthy, 0=unhealthy)",
		},
		[]string{"service", "component"},
	)

	infraConnectionLatency = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "infrastructure_connection_latency_ms",
			Help: "Connection latency to infrastructure components in milliseconds",
		},
		[]string{"service", "component"},
	)

	promRegistry *prometheus.Registry
)

// InitPrometheusMetrics 建立 registry 並註冊 HTTP 與基礎設施 metrics
func InitPrometheusMetrics(logger zerolog.Logger) error {
	registry := prometheus.NewRegistry()

	for name, c := range map[string]prometheus.Collector{
		"http_requests_total":                  httpRequestsTotal,
		"http_request_duration_seconds":        httpRequestDurationSeconds,
		"http_requests_active":                 httpRequestsActive,
		"google_api_daily_calls":               googleDailyUsage,
		"infrastructure_health_status":         infraHealthStatus,
		"infrastructure_connection_latency_ms": infraConnectionLatency,
	} {
		if err := registry.Register(c); err != nil {
			return fmt.Errorf("failed to register %s: %w", name, err)
		}
	}

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	promRegistry = registry
	logger.Info().Msg("Prometheus metrics 初始化成功")
	return nil
}

// GetStandardPrometheusHandler 返回標準的 Prometheus metrics handler
func GetStandardPrometheusHandler() http.Handler {
	if promRegistry == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Prometheus registry not initialized"))
		})
	}

	return promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})
}

// GetPrometheusRegistry 返回 Prometheus registry 供其他包使用
func GetPrometheusRegistry() *prometheus.Registry {
	return promRegistry
}

// routeLabel 使用註冊時的路徑樣板，避免 label 數量隨 URL 成長
func routeLabel(ctx huma.Context) string {
	if op := ctx.Operation(); op != nil && op.Path != "" {
		return op.Path
	}
	return ctx.URL().Path
}

// PrometheusMiddleware HTTP metrics 中間件
func PrometheusMiddleware(logger zerolog.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if promRegistry == nil {
			next(ctx)
			return
		}

		startTime := time.Now()
		method := ctx.Method()
		route := routeLabel(ctx)

		httpRequestsActive.WithLabelValues(method, route).Inc()
		defer httpRequestsActive.WithLabelValues(method, route).Dec()

		next(ctx)

		duration := time.Since(startTime)
		statusCode := ctx.Status()

		httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
		httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())

		logger.Debug().
			Str("method", method).
			Str("route", route).
			Int("status_code", statusCode).
			Float64("duration_seconds", duration.Seconds()).
			Msg("HTTP metrics recorded")
	}
}

// UpdateGoogleDailyUsage 更新今日 Google API 呼叫次數
func UpdateGoogleDailyUsage(counts map[string]int64) {
	if promRegistry == nil {
		return
	}
	for api, count := range counts {
		googleDailyUsage.WithLabelValues(api).Set(float64(count))
	}
}

// UpdateInfrastructureHealth 更新基礎設施健康狀態
func UpdateInfrastructureHealth(service, component string, isHealthy bool, latencyMs float64) {
	if promRegistry == nil {
		return
	}

	healthValue := 0.0
	if isHealthy {
		healthValue = 1.0
	}

	infraHealthStatus.WithLabelValues(service, component).Set(healthValue)
	if latencyMs >= 0 {
		infraConnectionLatency.WithLabelValues(service, component).Set(latencyMs)
	}
}
