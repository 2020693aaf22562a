package middleware

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemOutput struct {
	Body struct {
		RequestID string `json:"request_id"`
	}
}

func newMiddlewareTestAPI(t *testing.T, middlewares ...func(huma.Context, func(huma.Context))) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	for _, m := range middlewares {
		api.UseMiddleware(m)
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/items/{id}",
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*itemOutput, error) {
		if input.ID == "missing" {
			return nil, huma.Error404NotFound("not found")
		}
		out := &itemOutput{}
		out.Body.RequestID, _ = ctx.Value(requestIDKey{}).(string)
		return out, nil
	})
	return api
}

func TestRequestIDMiddlewareKeepsIncomingHeader(t *testing.T) {
	api := newMiddlewareTestAPI(t, RequestIDMiddleware)

	resp := api.Get("/items/1", "X-Request-ID: req-123")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "req-123", resp.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"request_id":"req-123"}`, resp.Body.String())
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	api := newMiddlewareTestAPI(t, RequestIDMiddleware)

	resp := api.Get("/items/1")
	require.Equal(t, http.StatusOK, resp.Code)

	generated := resp.Header().Get("X-Request-ID")
	require.NotEmpty(t, generated)
	assert.Len(t, generated, 36)
	assert.Contains(t, resp.Body.String(), generated)
}

func TestOpenTelemetryMiddlewareDisabled(t *testing.T) {
	var logs strings.Builder
	logger := zerolog.New(&logs)
	api := newMiddlewareTestAPI(t, RequestIDMiddleware, OpenTelemetryMiddleware(OtelConfig{Enabled: false}, logger))

	resp := api.Get("/items/missing", "X-Request-ID: req-404")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Empty(t, resp.Header().Get("X-Trace-ID"))

	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"request_id":"req-404"`)
	assert.Contains(t, logs.String(), `"status_code":404`)
}

func TestPrometheusMiddlewareUsesRouteTemplate(t *testing.T) {
	require.NoError(t, InitPrometheusMetrics(zerolog.Nop()))
	api := newMiddlewareTestAPI(t, PrometheusMiddleware(zerolog.Nop()))

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "200")
	before := testutil.ToFloat64(counter)

	api.Get("/items/1")
	api.Get("/items/2")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsActive.WithLabelValues(http.MethodGet, "/items/{id}")))
}

func TestUpdateInfrastructureHealth(t *testing.T) {
	require.NoError(t, InitPrometheusMetrics(zerolog.Nop()))

	UpdateInfrastructureHealth("maps-gateway", "redis", true, 1.5)
	assert.Equal(t, 1.0, testutil.ToFloat64(infraHealthStatus.WithLabelValues("maps-gateway", "redis")))
	assert.Equal(t, 1.5, testutil.ToFloat64(infraConnectionLatency.WithLabelValues("maps-gateway", "redis")))

	UpdateInfrastructureHealth("maps-gateway", "redis", false, -1)
	assert.Equal(t, 0.0, testutil.ToFloat64(infraHealthStatus.WithLabelValues("maps-gateway", "redis")))
	assert.Equal(t, 1.5, testutil.ToFloat64(infraConnectionLatency.WithLabelValues("maps-gateway", "redis")))

	UpdateGoogleDailyUsage(map[string]int64{"directions": 42})
	assert.Equal(t, 42.0, testutil.ToFloat64(googleDailyUsage.WithLabelValues("directions")))
}
