package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"maps-gateway/infra"
	"maps-gateway/metrics"
	"maps-gateway/model"
	"maps-gateway/service/interfaces"
	"maps-gateway/utils"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// GoogleMapService 把正規化後的請求轉成一次 Google Web Service 呼叫，不重試
type GoogleMapService struct {
	logger       zerolog.Logger
	GoogleClient *infra.GoogleClient
	usage        *TrafficUsageLogService
	timeout      time.Duration
}

var _ interfaces.MapsProvider = (*GoogleMapService)(nil)

func NewGoogleMapService(logger zerolog.Logger, gc *infra.GoogleClient, usage *TrafficUsageLogService, timeout time.Duration) *GoogleMapService {
	return &GoogleMapService{
		logger:       logger.With().Str("module", "google_map_service").Logger(),
		GoogleClient: gc,
		usage:        usage,
		timeout:      timeout,
	}
}

// NewDirectionsParams 依 time_mode 只設定 departure_time 或 arrival_time 其中之一
func NewDirectionsParams(req model.DirectionsRequest) (interfaces.DirectionsParams, error) {
	params := interfaces.DirectionsParams{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        req.Mode,
		TransitMode: req.TransitMode,
		Language:    req.Language,
	}
	if req.TargetTime == "" {
		// 兩者皆未設定時 Google 以現在時間出發
		return params, nil
	}

	t, err := req.Time()
	if err != nil {
		return interfaces.DirectionsParams{}, &model.ValidationError{Field: "target_time", Message: err.Error(), Value: req.TargetTime}
	}
	ts := utils.ToEpochSeconds(t)
	if req.TimeMode == model.TimeModeArrival {
		params.ArrivalTime = &ts
	} else {
		params.DepartureTime = &ts
	}
	return params, nil
}

func (s *GoogleMapService) Directions(ctx context.Context, params interfaces.DirectionsParams) ([]json.RawMessage, error) {
	op := metrics.OperationDirections
	ctx, span := infra.StartGoogleSpan(ctx, string(op),
		infra.AttrString("google.mode", string(params.Mode)),
		infra.AttrString("google.language", string(params.Language)),
	)
	defer span.End()
	start := time.Now()

	env, err := s.get(ctx, op, infra.DirectionsPath, params.Values())
	if err != nil {
		s.finish(ctx, span, op, start, 0, err)
		return nil, err
	}

	var body struct {
		Routes []json.RawMessage `json:"routes"`
	}
	if err := json.Unmarshal(env.Body, &body); err != nil {
		schemaErr := &model.SchemaError{Path: "routes", Message: err.Error(), Payload: env.Body}
		s.finish(ctx, span, op, start, 0, schemaErr)
		return nil, schemaErr
	}

	s.finish(ctx, span, op, start, len(body.Routes), nil)
	if len(body.Routes) == 0 {
		return nil, nil
	}
	return body.Routes, nil
}

func (s *GoogleMapService) TextSearch(ctx context.Context, params interfaces.TextSearchParams) (json.RawMessage, error) {
	op := metrics.OperationTextSearch
	ctx, span := infra.StartGoogleSpan(ctx, string(op),
		infra.AttrString("google.language", string(params.Language)),
	)
	defer span.End()
	start := time.Now()

	env, err := s.get(ctx, op, infra.TextSearchPath, params.Values())
	if err != nil {
		s.finish(ctx, span, op, start, 0, err)
		return nil, err
	}

	// results 型別不對時交給 schema 層回報
	var places struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(env.Body, &places); err == nil && len(places.Results) == 0 {
		s.finish(ctx, span, op, start, 0, nil)
		return nil, nil
	}

	s.finish(ctx, span, op, start, len(places.Results), nil)
	return env.Body, nil
}

// get 以設定的期限包住單次呼叫，逾時轉成 ProviderTimeoutError
func (s *GoogleMapService) get(ctx context.Context, op metrics.OperationType, path string, params url.Values) (*infra.GoogleEnvelope, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	env, err := s.GoogleClient.GetJSON(ctx, string(op), path, params)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, &model.ProviderTimeoutError{API: string(op), Timeout: s.timeout, Err: err}
	}
	return env, err
}

func (s *GoogleMapService) finish(ctx context.Context, span trace.Span, op metrics.OperationType, start time.Time, elements int, err error) {
	duration := time.Since(start)
	status := operationStatus(err, elements == 0)

	if err != nil {
		s.logger.Error().
			Err(err).
			Str("api", string(op)).
			Str("status", string(status)).
			Dur("duration", duration).
			Msg("Google API 呼叫失敗 (Google API call failed)")
		infra.RecordError(span, err, "google call failed", infra.AttrErrorType(string(status)))
	} else {
		s.logger.Info().
			Str("api", string(op)).
			Int("elements", elements).
			Dur("duration", duration).
			Msg("Google API 使用記錄 (Google API usage)")
		if elements == 0 {
			infra.AddEvent(span, "google.zero_results")
		}
		infra.MarkSuccess(span, infra.AttrInt("google.elements", elements))
	}

	metrics.RecordGoogleCall(op, status, duration)
	s.usage.Record(ctx, string(op), status, elements, duration)
}

// operationStatus 把錯誤類型對應到 metrics 標籤
func operationStatus(err error, empty bool) metrics.OperationStatus {
	var validationErr *model.ValidationError
	var schemaErr *model.SchemaError
	var timeoutErr *model.ProviderTimeoutError

	switch {
	case err == nil && empty:
		return metrics.StatusEmpty
	case err == nil:
		return metrics.StatusSuccess
	case errors.As(err, &validationErr):
		return metrics.StatusInvalid
	case errors.As(err, &timeoutErr):
		return metrics.StatusTimeout
	case errors.As(err, &schemaErr):
		return metrics.StatusSchemaError
	default:
		return metrics.StatusProviderError
	}
}
