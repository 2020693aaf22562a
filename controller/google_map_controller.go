package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"maps-gateway/data-models/google_map"
	"maps-gateway/model"
	"maps-gateway/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"
)

type GoogleMapController struct {
	logger            zerolog.Logger
	DirectionsService *service.DirectionsService
	PlacesService     *service.PlacesService
}

func NewGoogleMapController(logger zerolog.Logger, directions *service.DirectionsService, places *service.PlacesService) *GoogleMapController {
	return &GoogleMapController{
		logger:            logger.With().Str("module", "google_map_controller").Logger(),
		DirectionsService: directions,
		PlacesService:     places,
	}
}

func (c *GoogleMapController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "root",
		Tags:        []string{"system"},
		Summary:     "Hello World",
		Method:      http.MethodGet,
		Path:        "/",
	}, func(ctx context.Context, input *struct{}) (*google_map.RootResponse, error) {
		resp := &google_map.RootResponse{}
		resp.Body.Message = "Hello World"
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "search-places",
		Tags:        []string{"google"},
		Summary:     "地點文字搜尋（Places Text Search）",
		Description: "沒有符合的地點時回傳空 body。",
		Method:      http.MethodPost,
		Path:        "/api/places/",
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway, http.StatusGatewayTimeout},
	}, func(ctx context.Context, input *google_map.PlacesInput) (*google_map.PlacesResponse, error) {
		result, err := c.PlacesService.SearchPlaces(ctx, input.Request())
		if err != nil {
			return nil, c.toHTTPError(err)
		}
		return &google_map.PlacesResponse{Body: result}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-directions",
		Tags:        []string{"google"},
		Summary:     "路線規劃（Directions）",
		Description: "沒有可用路線時回傳空陣列。",
		Method:      http.MethodPost,
		Path:        "/api/directions/",
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway, http.StatusGatewayTimeout},
	}, func(ctx context.Context, input *google_map.DirectionsInput) (*google_map.DirectionsResponse, error) {
		routes, err := c.DirectionsService.GetDirections(ctx, input.Request())
		if err != nil {
			return nil, c.toHTTPError(err)
		}
		if routes == nil {
			routes = []model.DirectionsRoute{}
		}
		return &google_map.DirectionsResponse{Body: routes}, nil
	})
}

// toHTTPError 依錯誤類型對應 HTTP 狀態碼
func (c *GoogleMapController) toHTTPError(err error) error {
	var validationErr *model.ValidationError
	var schemaErr *model.SchemaError
	var timeoutErr *model.ProviderTimeoutError
	var providerErr *model.ProviderError

	switch {
	case errors.As(err, &validationErr):
		return huma.Error422UnprocessableEntity("請求參數不合法 (validation failed)", &huma.ErrorDetail{
			Message:  validationErr.Message,
			Location: "body." + validationErr.Field,
			Value:    validationErr.Value,
		})
	case errors.As(err, &schemaErr):
		return huma.Error500InternalServerError("供應商回應格式不符 (provider response schema mismatch)", &huma.ErrorDetail{
			Message:  schemaErr.Message,
			Location: schemaErr.Path,
		})
	case errors.As(err, &timeoutErr):
		return huma.Error504GatewayTimeout("Google API 逾時 (provider timeout)", &huma.ErrorDetail{
			Message:  fmt.Sprintf("timed out after %s", timeoutErr.Timeout),
			Location: "google." + timeoutErr.API,
		})
	case errors.As(err, &providerErr):
		// 傳輸錯誤的細節只寫日誌，不回給呼叫端
		return huma.Error502BadGateway("Google API 呼叫失敗 (provider error)", &huma.ErrorDetail{
			Message:  providerStatus(providerErr),
			Location: "google." + providerErr.API,
		})
	default:
		c.logger.Error().Err(err).Msg("未預期的錯誤 (Unexpected error)")
		return huma.Error500InternalServerError("內部錯誤 (internal error)")
	}
}

func providerStatus(err *model.ProviderError) string {
	if err.Status == "" {
		return "transport error"
	}
	return err.Status
}
