package service

import (
	"context"
	"errors"
	"time"

	"maps-gateway/infra"
	"maps-gateway/metrics"
	"maps-gateway/model"
	"maps-gateway/service/interfaces"

	"github.com/rs/zerolog"
)

type DirectionsService struct {
	logger   zerolog.Logger
	provider interfaces.MapsProvider
	location *time.Location
}

// NewDirectionsService location 用來解讀沒有偏移量的 target_time
func NewDirectionsService(logger zerolog.Logger, provider interfaces.MapsProvider, location *time.Location) *DirectionsService {
	if location == nil {
		location = time.UTC
	}
	return &DirectionsService{
		logger:   logger.With().Str("module", "directions_service").Logger(),
		provider: provider,
		location: location,
	}
}

// GetDirections 查詢路線；沒有結果時回傳空 slice 而不是 nil
func (s *DirectionsService) GetDirections(ctx context.Context, req model.DirectionsRequest) (routes []model.DirectionsRoute, err error) {
	ctx, span := infra.StartServiceSpan(ctx, string(metrics.OperationGetRoutes))
	defer span.End()
	start := time.Now()
	defer func() {
		status := operationStatus(err, len(routes) == 0)
		metrics.RecordServiceOperation(metrics.ServiceTypeDirections, metrics.OperationGetRoutes, status, time.Since(start))
		if err != nil {
			infra.RecordError(span, err, "get directions failed", infra.AttrErrorType(string(status)))
		} else {
			infra.MarkSuccess(span, infra.AttrInt("routes.count", len(routes)))
		}
	}()

	normalized, err := req.Normalize(s.location)
	if err != nil {
		s.logger.Warn().Err(err).Msg("路線請求參數不合法 (Invalid directions request)")
		return nil, err
	}
	params, err := NewDirectionsParams(normalized)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Directions(ctx, params)
	if err != nil {
		s.logProviderFailure(err)
		return nil, err
	}

	routes, err = DecodeRoutes(raw)
	if err != nil {
		s.logProviderFailure(err)
		return nil, err
	}

	s.logger.Debug().
		Str("mode", string(normalized.Mode)).
		Str("time_mode", string(normalized.TimeMode)).
		Str("target_time", normalized.TargetTime).
		Int("routes", len(routes)).
		Msg("路線查詢完成 (Directions resolved)")
	return routes, nil
}

func (s *DirectionsService) logProviderFailure(err error) {
	var schemaErr *model.SchemaError
	if errors.As(err, &schemaErr) {
		s.logger.Error().
			Str("path", schemaErr.Path).
			Str("reason", schemaErr.Message).
			RawJSON("payload", schemaErr.Payload).
			Msg("Google 路線回應格式不符 (Directions response schema mismatch)")
		return
	}
	s.logger.Error().Err(err).Msg("路線查詢失敗 (Directions lookup failed)")
}
