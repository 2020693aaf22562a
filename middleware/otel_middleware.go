package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

type OtelConfig struct {
	ServiceName     string
	ServiceVersion  string
	Environment     string
	OTLPEndpoint    string
	Enabled         bool
	DevelopmentMode bool // 開發模式使用 stdout，生產模式使用 OTLP
	// Registry 不為 nil 時 OTel metrics 也會出現在 /metrics
	Registry *prometheus.Registry
}

var (
	tracer          trace.Tracer
	requestCounter  metric.Int64Counter
	requestDuration metric.Float64Histogram
)

// InitOpenTelemetry 初始化 traces 與 metrics，回傳清理函數
func InitOpenTelemetry(config OtelConfig, logger zerolog.Logger) (func(), error) {
	if !config.Enabled {
		return func() {}, nil
	}

	ctx := context.Background()

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(config.ServiceName),
		semconv.ServiceVersionKey.String(config.ServiceVersion),
		semconv.DeploymentEnvironmentKey.String(config.Environment),
		semconv.ServiceInstanceIDKey.String(uuid.NewString()),
	)

	traceShutdown, err := setupTraceProvider(ctx, res, config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup trace provider: %w", err)
	}
	metricShutdown, err := setupMeterProvider(ctx, res, config, logger)
	if err != nil {
		_ = traceShutdown(ctx)
		return nil, fmt.Errorf("failed to setup meter provider: %w", err)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tracer = otel.Tracer(config.ServiceName)
	if err := initializeMetrics(otel.Meter(config.ServiceName)); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Info().
		Str("version", config.ServiceVersion).
		Str("environment", config.Environment).
		Str("otlp_endpoint", config.OTLPEndpoint).
		Bool("development_mode", config.DevelopmentMode).
		Msg("OpenTelemetry 初始化成功")

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for _, shutdown := range []func(context.Context) error{metricShutdown, traceShutdown} {
			if err := shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("Error during OpenTelemetry shutdown")
			}
		}
		logger.Info().Msg("OpenTelemetry 清理完成")
	}, nil
}

type requestIDKey struct{}

// RequestIDMiddleware 依序使用請求 header、chi 的 request id，都沒有時產生 uuid，並寫回回應 header
func RequestIDMiddleware(ctx huma.Context, next func(huma.Context)) {
	requestID := ctx.Header(requestIDHeader)
	if requestID == "" {
		requestID = chimiddleware.GetReqID(ctx.Context())
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.SetHeader(requestIDHeader, requestID)
	next(huma.WithValue(ctx, requestIDKey{}, requestID))
}

// OpenTelemetryMiddleware 為每個請求建立 server span 並記錄結構化日誌
func OpenTelemetryMiddleware(config OtelConfig, logger zerolog.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		startTime := time.Now()
		route := routeLabel(ctx)
		requestID := GetRequestIDFromContext(ctx)

		var span trace.Span
		if config.Enabled && tracer != nil {
			carrier := &HeaderCarrier{ctx: ctx}
			parentCtx := otel.GetTextMapPropagator().Extract(ctx.Context(), carrier)

			var spanCtx context.Context
			spanCtx, span = tracer.Start(parentCtx, fmt.Sprintf("%s %s", ctx.Method(), route),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPMethodKey.String(ctx.Method()),
					semconv.HTTPRouteKey.String(route),
					semconv.HTTPUserAgentKey.String(ctx.Header("User-Agent")),
					attribute.String("net.peer.ip", ctx.RemoteAddr()),
					attribute.String("http.request_id", requestID),
				),
			)
			defer span.End()

			ctx.SetHeader("X-Trace-ID", span.SpanContext().TraceID().String())
			otel.GetTextMapPropagator().Inject(spanCtx, carrier)
			ctx = huma.WithContext(ctx, spanCtx)
		}

		next(ctx)

		duration := time.Since(startTime)
		statusCode := ctx.Status()

		if requestCounter != nil && requestDuration != nil {
			metricAttrs := metric.WithAttributes(
				attribute.String("method", ctx.Method()),
				attribute.String("route", route),
				attribute.Int("status_code", statusCode),
				attribute.String("status_class", fmt.Sprintf("%dxx", statusCode/100)),
			)
			requestCounter.Add(ctx.Context(), 1, metricAttrs)
			requestDuration.Record(ctx.Context(), duration.Seconds(), metricAttrs)
		}

		if span != nil {
			span.SetAttributes(semconv.HTTPStatusCodeKey.Int(statusCode))
			switch {
			case statusCode >= 500:
				span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", statusCode))
			case statusCode >= 400:
				span.SetStatus(codes.Error, fmt.Sprintf("Client Error %d", statusCode))
			default:
				span.SetStatus(codes.Ok, "")
			}
		}

		var logEvent *zerolog.Event
		switch {
		case statusCode >= 500:
			logEvent = logger.Error()
		case statusCode >= 400:
			logEvent = logger.Warn()
		default:
			logEvent = logger.Info()
		}
		if span != nil {
			logEvent = logEvent.Str("trace_id", span.SpanContext().TraceID().String())
		}
		logEvent.
			Str("request_id", requestID).
			Str("method", ctx.Method()).
			Str("path", ctx.URL().Path).
			Int("status_code", statusCode).
			Float64("duration_ms", float64(duration.Nanoseconds())/1e6).
			Str("remote_addr", ctx.RemoteAddr()).
			Msg("HTTP request completed")
	}
}

// GetRequestIDFromContext 獲取 RequestIDMiddleware 設定的 request ID
func GetRequestIDFromContext(ctx huma.Context) string {
	if id, ok := ctx.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ctx.Header(requestIDHeader)
}

func setupTraceProvider(ctx context.Context, res *resource.Resource, config OtelConfig, logger zerolog.Logger) (func(context.Context) error, error) {
	var exporter sdktrace.SpanExporter
	var err error

	if config.DevelopmentMode {
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		logger.Info().Msg("使用 stdout trace exporter（開發模式）")
	} else {
		exporter, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(config.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)
		logger.Info().Str("endpoint", config.OTLPEndpoint).Msg("使用 OTLP gRPC trace exporter（生產模式）")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func setupMeterProvider(ctx context.Context, res *resource.Resource, config OtelConfig, logger zerolog.Logger) (func(context.Context) error, error) {
	var readers []sdkmetric.Reader

	if config.Registry != nil {
		promExporter, err := otelprom.New(otelprom.WithRegisterer(config.Registry))
		if err != nil {
			return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
		}
		readers = append(readers, promExporter)
		logger.Info().Msg("已啟用 Prometheus metrics exporter")
	}

	if config.DevelopmentMode {
		stdoutExporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(stdoutExporter,
			sdkmetric.WithInterval(30*time.Second)))
	} else {
		otlpExporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(config.OTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("無法創建 OTLP metric exporter，將只使用 Prometheus")
		} else {
			readers = append(readers, sdkmetric.NewPeriodicReader(otlpExporter,
				sdkmetric.WithInterval(30*time.Second)))
		}
	}

	mpOptions := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, reader := range readers {
		mpOptions = append(mpOptions, sdkmetric.WithReader(reader))
	}
	mp := sdkmetric.NewMeterProvider(mpOptions...)
	otel.SetMeterProvider(mp)

	return mp.Shutdown, nil
}

// initializeMetrics 名稱加上 otel 前綴，避免和 PrometheusMiddleware 的 metrics 衝突
func initializeMetrics(meter metric.Meter) error {
	var err error

	requestCounter, err = meter.Int64Counter(
		"otel_http_server_requests",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request counter: %w", err)
	}

	requestDuration, err = meter.Float64Histogram(
		"otel_http_server_duration",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	return nil
}

// HeaderCarrier 實現 propagation.TextMapCarrier 接口
type HeaderCarrier struct {
	ctx huma.Context
}

func (h *HeaderCarrier) Get(key string) string {
	return h.ctx.Header(key)
}

func (h *HeaderCarrier) Set(key, value string) {
	h.ctx.SetHeader(key, value)
}

// Keys huma.Context 無法列舉 header，extract 只需要 Get
func (h *HeaderCarrier) Keys() []string {
	return []string{}
}
