package controller

import (
	"context"
	"errors"
	"time"

	"maps-gateway/data-models/traffic_usage_log"
	"maps-gateway/service"
	"maps-gateway/utils"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"
)

type TrafficUsageLogController struct {
	logger                 zerolog.Logger
	trafficUsageLogService *service.TrafficUsageLogService
}

func NewTrafficUsageLogController(logger zerolog.Logger, trafficUsageLogService *service.TrafficUsageLogService) *TrafficUsageLogController {
	return &TrafficUsageLogController{
		logger:                 logger.With().Str("module", "traffic_usage_log_controller").Logger(),
		trafficUsageLogService: trafficUsageLogService,
	}
}

func (c *TrafficUsageLogController) RegisterRoutes(api huma.API) {
	// 獲取 Google API 使用統計
	huma.Register(api, huma.Operation{
		OperationID: "get-traffic-usage-stats",
		Method:      "GET",
		Path:        "/traffic-usage-logs/stats",
		Summary:     "獲取 Google API 使用統計",
		Tags:        []string{"Traffic Usage Log"},
	}, func(ctx context.Context, input *traffic_usage_log.GetTrafficUsageStatsInput) (*traffic_usage_log.TrafficUsageStatsResponse, error) {
		stats, err := c.trafficUsageLogService.GetTrafficUsageStats(ctx, input.GroupBy)
		if err != nil {
			if errors.Is(err, service.ErrUsageStoreDisabled) {
				return nil, huma.Error503ServiceUnavailable("MongoDB 未設定 (usage log store disabled)")
			}
			c.logger.Error().Err(err).Str("group_by", input.GroupBy).Msg("獲取統計信息失敗")
			return nil, huma.Error500InternalServerError("獲取統計信息失敗", err)
		}
		if stats == nil {
			stats = []service.StatsResult{}
		}

		return &traffic_usage_log.TrafficUsageStatsResponse{Body: stats}, nil
	})

	// 獲取每日 Google API 呼叫次數
	huma.Register(api, huma.Operation{
		OperationID: "get-daily-usage",
		Method:      "GET",
		Path:        "/traffic-usage-logs/daily",
		Summary:     "獲取每日 Google API 呼叫次數",
		Tags:        []string{"Traffic Usage Log"},
	}, func(ctx context.Context, input *traffic_usage_log.GetDailyUsageInput) (*traffic_usage_log.DailyUsageResponse, error) {
		day := utils.NowUTC()
		if input.Day != "" {
			parsed, err := time.Parse("20060102", input.Day)
			if err != nil {
				return nil, huma.Error422UnprocessableEntity("日期格式錯誤", &huma.ErrorDetail{
					Message:  err.Error(),
					Location: "query.day",
					Value:    input.Day,
				})
			}
			day = parsed
		}

		usage, err := c.trafficUsageLogService.GetDailyUsage(ctx, day)
		if err != nil {
			if errors.Is(err, service.ErrUsageStoreDisabled) {
				return nil, huma.Error503ServiceUnavailable("Redis 未設定 (daily usage store disabled)")
			}
			c.logger.Error().Err(err).Str("day", input.Day).Msg("獲取每日用量失敗")
			return nil, huma.Error500InternalServerError("獲取每日用量失敗", err)
		}

		return &traffic_usage_log.DailyUsageResponse{Body: usage}, nil
	})
}
