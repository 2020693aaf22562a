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

type PlacesService struct {
	logger   zerolog.Logger
	provider interfaces.MapsProvider
}

func NewPlacesService(logger zerolog.Logger, provider interfaces.MapsProvider) *PlacesService {
	return &PlacesService{
		logger:   logger.With().Str("module", "places_service").Logger(),
		provider: provider,
	}
}

// SearchPlaces 文字搜尋地點；沒有結果時回傳 nil, nil
func (s *PlacesService) SearchPlaces(ctx context.Context, req model.PlacesRequest) (result *model.PlacesResult, err error) {
	ctx, span := infra.StartServiceSpan(ctx, string(metrics.OperationSearchPlaces))
	defer span.End()
	start := time.Now()
	defer func() {
		status := operationStatus(err, result == nil)
		metrics.RecordServiceOperation(metrics.ServiceTypePlaces, metrics.OperationSearchPlaces, status, time.Since(start))
		if err != nil {
			infra.RecordError(span, err, "search places failed", infra.AttrErrorType(string(status)))
		} else {
			infra.MarkSuccess(span)
		}
	}()

	normalized, err := req.Normalize()
	if err != nil {
		s.logger.Warn().Err(err).Msg("地點搜尋參數不合法 (Invalid places request)")
		return nil, err
	}

	raw, err := s.provider.TextSearch(ctx, interfaces.TextSearchParams{
		Query:    normalized.Query,
		Language: normalized.Language,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("地點搜尋失敗 (Places search failed)")
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	result, err = DecodePlacesResult(raw)
	if err != nil {
		var schemaErr *model.SchemaError
		if errors.As(err, &schemaErr) {
			s.logger.Error().
				Str("path", schemaErr.Path).
				Str("reason", schemaErr.Message).
				RawJSON("payload", schemaErr.Payload).
				Msg("Google 地點回應格式不符 (Places response schema mismatch)")
		}
		return nil, err
	}
	return result, nil
}
